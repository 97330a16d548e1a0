package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/hetznerdns"
	"github.com/lite-lake/hetznerdns/internal/config"
	"github.com/lite-lake/hetznerdns/internal/domain/entity"
	"github.com/lite-lake/hetznerdns/internal/infrastructure/logger"
)

var (
	recordsZone  string
	recordsType  string
	recordsName  string
	recordsValue string
	recordsTTL   int
	recordsYes   bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Record commands",
	Long:  "Manage the DNS records of a zone.",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	Long:  "List records, either for one zone or for every zone of the account.",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordsList()
	},
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Show record details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRecordsShow(args[0])
	},
}

var recordsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a record",
	Long:  "Create a record in a zone. A TTL of zero leaves the zone default in place.",
	Run: func(cmd *cobra.Command, args []string) {
		runRecordsCreate()
	},
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update <record-id>",
	Short: "Update a record",
	Long:  "Update a record. Fields not given keep their current value.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRecordsUpdate(cmd, args[0])
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <record-id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRecordsDelete(args[0])
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.AddCommand(recordsListCmd)
	recordsListCmd.Flags().StringVarP(&recordsZone, "zone", "z", "", "Zone name or id")

	recordsCmd.AddCommand(recordsShowCmd)

	recordsCmd.AddCommand(recordsCreateCmd)
	recordsCreateCmd.Flags().StringVarP(&recordsZone, "zone", "z", "", "Zone name or id")
	recordsCreateCmd.Flags().StringVarP(&recordsType, "type", "t", "", "Record type (A, AAAA, CNAME, ...)")
	recordsCreateCmd.Flags().StringVarP(&recordsName, "name", "n", "", "Record name (@ for the zone apex)")
	recordsCreateCmd.Flags().StringVar(&recordsValue, "value", "", "Record value")
	recordsCreateCmd.Flags().IntVar(&recordsTTL, "ttl", 0, "TTL in seconds (0 uses the zone default)")

	recordsCmd.AddCommand(recordsUpdateCmd)
	recordsUpdateCmd.Flags().StringVarP(&recordsZone, "zone", "z", "", "Zone name or id")
	recordsUpdateCmd.Flags().StringVarP(&recordsType, "type", "t", "", "Record type (A, AAAA, CNAME, ...)")
	recordsUpdateCmd.Flags().StringVarP(&recordsName, "name", "n", "", "Record name (@ for the zone apex)")
	recordsUpdateCmd.Flags().StringVar(&recordsValue, "value", "", "Record value")
	recordsUpdateCmd.Flags().IntVar(&recordsTTL, "ttl", 0, "TTL in seconds (0 uses the zone default)")

	recordsCmd.AddCommand(recordsDeleteCmd)
	recordsDeleteCmd.Flags().BoolVar(&recordsYes, "yes", false, "Skip confirmation prompt")
}

func runRecordsList() {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "records list")

	zoneRef := recordsZone
	if zoneRef == "" {
		zoneRef = cfg.Zone
	}

	var zones []hetznerdns.Zone
	if zoneRef == "" {
		all, err := client.ListZones(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing zones: %v\n", err)
			os.Exit(1)
		}
		zones = all
	} else {
		zone, err := resolveZone(ctx, client, zoneRef)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		zones = []hetznerdns.Zone{*zone}
	}

	fmt.Println("RECORDS:")
	total := 0
	for _, zone := range zones {
		records, err := client.ListRecords(ctx, zone.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing records for %s: %v\n", zone.Name, err)
			os.Exit(1)
		}
		for _, r := range records {
			fmt.Printf("  %-20s %-6s %-24s -> %-30s (ttl: %d, id: %s)\n",
				zone.Name, r.Type, r.Name, r.Value, r.TTL, r.ID)
			total++
		}
	}
	if total == 0 {
		fmt.Println("  (none)")
	}
}

func runRecordsShow(recordID string) {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "records show")

	var record *hetznerdns.Record
	err := logger.TimedOperation(ctx, "get record", func() error {
		var err error
		record, err = client.GetRecord(ctx, recordID)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting record: %v\n", err)
		os.Exit(1)
	}

	renderEntity("record", record.Name, record)
}

func runRecordsCreate() {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "records create")

	zone := requireZone(ctx, client, cfg, "dnsops records create --zone <zone> --type <type> --name <name> --value <value>")

	local := entity.Record{
		Type:  entity.RecordType(recordsType),
		Name:  recordsName,
		Value: recordsValue,
		TTL:   recordsTTL,
	}
	if err := local.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}

	var record *hetznerdns.Record
	err := logger.TimedOperation(ctx, "create record", func() error {
		var err error
		record, err = client.CreateRecord(ctx, local.Value, local.TTL, hetznerdns.RecordType(local.Type), local.Name, zone.ID)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ created %s record %s in %s (id: %s)\n", record.Type, record.Name, zone.Name, record.ID)
}

func runRecordsUpdate(cmd *cobra.Command, recordID string) {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "records update")

	current, err := client.GetRecord(ctx, recordID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting record: %v\n", err)
		os.Exit(1)
	}

	zoneID := current.ZoneID
	if cmd.Flags().Changed("zone") {
		zone, err := resolveZone(ctx, client, recordsZone)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		zoneID = zone.ID
	}

	next := entity.Record{
		Type:  entity.RecordType(current.Type),
		Name:  current.Name,
		Value: current.Value,
		TTL:   current.TTL,
	}
	if cmd.Flags().Changed("type") {
		next.Type = entity.RecordType(recordsType)
	}
	if cmd.Flags().Changed("name") {
		next.Name = recordsName
	}
	if cmd.Flags().Changed("value") {
		next.Value = recordsValue
	}
	if cmd.Flags().Changed("ttl") {
		next.TTL = recordsTTL
	}
	if err := next.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error: %v\n", err)
		os.Exit(1)
	}

	var record *hetznerdns.Record
	err = logger.TimedOperation(ctx, "update record", func() error {
		var err error
		record, err = client.UpdateRecord(ctx, recordID, zoneID, hetznerdns.RecordType(next.Type), next.Name, next.Value, next.TTL)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ updated %s record %s (id: %s)\n", record.Type, record.Name, record.ID)
}

func runRecordsDelete(recordID string) {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "records delete")

	if !recordsYes && !Confirm(fmt.Sprintf("Delete record %s?", recordID), false) {
		fmt.Println("Cancelled.")
		return
	}

	err := logger.TimedOperation(ctx, "delete record", func() error {
		return client.DeleteRecord(ctx, recordID)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ deleted record %s\n", recordID)
}

// requireZone resolves the --zone flag or the configured default zone,
// printing the available zones when neither is set.
func requireZone(ctx context.Context, client *hetznerdns.Client, cfg *config.Config, usage string) *hetznerdns.Zone {
	zoneRef := recordsZone
	if zoneRef == "" {
		zoneRef = cfg.Zone
	}
	if zoneRef == "" {
		zones, err := client.ListZones(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing zones: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Available zones:")
		for _, z := range zones {
			fmt.Printf("  - %s\n", z.Name)
		}
		fmt.Printf("\nUsage: %s\n", usage)
		os.Exit(1)
	}

	zone, err := resolveZone(ctx, client, zoneRef)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return zone
}
