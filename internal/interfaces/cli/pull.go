package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lite-lake/hetznerdns"
	"github.com/lite-lake/hetznerdns/internal/domain"
	"github.com/lite-lake/hetznerdns/internal/domain/entity"
	"github.com/lite-lake/hetznerdns/internal/domain/service"
	"github.com/lite-lake/hetznerdns/internal/domain/valueobject"
	"github.com/lite-lake/hetznerdns/internal/infrastructure/logger"
	"github.com/lite-lake/hetznerdns/internal/infrastructure/state"
)

var (
	pullZone        string
	pullAutoApprove bool
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull records into the local snapshot",
	Long:  "Pull DNS records from a zone and sync them into the local snapshot file.",
	Run: func(cmd *cobra.Command, args []string) {
		runPull()
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
	pullCmd.Flags().StringVarP(&pullZone, "zone", "z", "", "Zone name or id")
	pullCmd.Flags().BoolVar(&pullAutoApprove, "auto-approve", false, "Sync all changes without asking")
}

func runPull() {
	cfg := loadConfig()
	client := newClient(cfg)
	ctx := logger.WithOperation(context.Background(), "pull")

	zoneRef := pullZone
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
		fmt.Println("\nUsage: dnsops pull --zone <zone>")
		return
	}

	zone, err := resolveZone(ctx, client, zoneRef)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var remote []hetznerdns.Record
	err = logger.TimedOperation(ctx, "list records", func() error {
		var err error
		remote, err = client.ListRecords(ctx, zone.ID)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing records for %s: %v\n", zone.Name, err)
		os.Exit(1)
	}

	remoteRecords := make([]entity.Record, 0, len(remote))
	for _, r := range remote {
		remoteRecords = append(remoteRecords, entity.Record{
			Type:  entity.RecordType(r.Type),
			Name:  r.Name,
			Value: r.Value,
			TTL:   r.TTL,
		})
	}

	store := state.NewFileStore(cfg.Snapshot)
	snap, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		os.Exit(1)
	}

	var localRecords []entity.Record
	if local := snap.Zone(zone.Name); local != nil {
		localRecords = local.Records
	}

	changes := service.DiffRecords(zone.Name, localRecords, remoteRecords)
	if len(changes) == 0 {
		fmt.Println("No record differences detected.")
		return
	}

	fmt.Printf("Record Differences (Zone: %s):\n", zone.Name)
	fmt.Println("=================================")
	for _, ch := range changes {
		prefix, style := formatChangeType(ch.Change)
		fmt.Printf("%s %-6s %-20s -> %-30s (ttl: %d)\n",
			style.Render(prefix),
			style.Render(string(ch.Type)),
			style.Render(ch.Name),
			style.Render(ch.Value),
			ch.TTL)
	}

	if pullAutoApprove {
		if err := savePull(store, snap, zone, localRecords, changes); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Records synced to %s.\n", store.Path())
		return
	}

	if err := runPullTUI(store, snap, zone, localRecords, changes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func savePull(store *state.FileStore, snap *state.Snapshot, zone *hetznerdns.Zone, local []entity.Record, changes []service.RecordChange) error {
	zoneRecords := entity.ZoneRecords{
		Name:    zone.Name,
		ID:      zone.ID,
		Records: service.ApplyChanges(local, changes),
	}
	if err := zoneRecords.Validate(); err != nil {
		return domain.WrapOp("validating pulled records", err)
	}
	snap.SetZone(zoneRecords)
	return store.Save(snap)
}

type pullModel struct {
	Changes  []service.RecordChange
	Selected map[int]bool
	Cursor   int
	Width    int
	Height   int
	Done     bool
}

func (m pullModel) Init() tea.Cmd {
	return nil
}

func (m pullModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
			return m, nil
		case "down", "j":
			if m.Cursor < len(m.Changes)-1 {
				m.Cursor++
			}
			return m, nil
		case " ":
			m.Selected[m.Cursor] = !m.Selected[m.Cursor]
			return m, nil
		case "a":
			for i := range m.Changes {
				m.Selected[i] = true
			}
			return m, nil
		case "n":
			for i := range m.Changes {
				m.Selected[i] = false
			}
			return m, nil
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pullModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Select Records to Sync"))
	b.WriteString("\n\n")

	for i, ch := range m.Changes {
		cursor := " "
		if m.Cursor == i {
			cursor = ">"
		}
		checked := " "
		if m.Selected[i] {
			checked = "x"
		}

		prefix, style := formatChangeType(ch.Change)
		line := fmt.Sprintf("%s [%s] %s %-6s %-20s -> %-30s",
			cursor, checked, prefix, ch.Type, ch.Name, ch.Value)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/k: up  ↓/j: down  space: toggle  a: select all  n: deselect all  enter: confirm  q: quit"))

	return b.String()
}

func runPullTUI(store *state.FileStore, snap *state.Snapshot, zone *hetznerdns.Zone, local []entity.Record, changes []service.RecordChange) error {
	selected := make(map[int]bool)
	for i := range changes {
		if changes[i].Change == valueobject.ChangeTypeCreate || changes[i].Change == valueobject.ChangeTypeUpdate {
			selected[i] = true
		}
	}

	m := pullModel{
		Changes:  changes,
		Selected: selected,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}

	finalModel := result.(pullModel)
	if !finalModel.Done {
		return nil
	}

	selectedChanges := make([]service.RecordChange, 0, len(changes))
	for i, ch := range changes {
		if finalModel.Selected[i] {
			selectedChanges = append(selectedChanges, ch)
		}
	}

	if len(selectedChanges) == 0 {
		fmt.Println("No changes selected.")
		return nil
	}

	if err := savePull(store, snap, zone, local, selectedChanges); err != nil {
		return err
	}
	fmt.Printf("Records synced to %s.\n", store.Path())
	return nil
}
