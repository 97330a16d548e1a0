package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/hetznerdns"
	"github.com/lite-lake/hetznerdns/internal/domain"
	"github.com/lite-lake/hetznerdns/internal/infrastructure/logger"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Zone commands",
	Long:  "Inspect the DNS zones of the account.",
}

var zonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List zones",
	Long:  "List all zones the API token can see.",
	Run: func(cmd *cobra.Command, args []string) {
		runZonesList()
	},
}

var zonesShowCmd = &cobra.Command{
	Use:   "show <zone>",
	Short: "Show zone details",
	Long:  "Show full details for a zone, referenced by name or id.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runZonesShow(args[0])
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	zonesCmd.AddCommand(zonesListCmd)
	zonesCmd.AddCommand(zonesShowCmd)
}

func runZonesList() {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "zones list")

	var zones []hetznerdns.Zone
	err := logger.TimedOperation(ctx, "list zones", func() error {
		var err error
		zones, err = client.ListZones(ctx)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing zones: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("ZONES:")
	if len(zones) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, z := range zones {
		status := z.Status
		switch z.Status {
		case "verified":
			status = successStyle.Render(z.Status)
		case "pending":
			status = warningStyle.Render(z.Status)
		}
		fmt.Printf("  %-28s %-24s %-10s records: %-4d ttl: %d\n",
			z.Name, z.ID, status, z.RecordsCount, z.TTL)
	}
}

func runZonesShow(nameOrID string) {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "zones show")

	zone, err := resolveZone(ctx, client, nameOrID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderEntity("zone", zone.Name, zone)
}

// resolveZone accepts a zone id or an exact zone name. Ids win when a zone
// is somehow named like another zone's id.
func resolveZone(ctx context.Context, client *hetznerdns.Client, nameOrID string) (*hetznerdns.Zone, error) {
	zones, err := client.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	for i := range zones {
		if zones[i].ID == nameOrID {
			return &zones[i], nil
		}
	}
	for i := range zones {
		if zones[i].Name == nameOrID {
			return &zones[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, nameOrID)
}
