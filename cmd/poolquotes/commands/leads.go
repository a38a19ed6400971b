package commands

import (
	"errors"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"poolquotes/internal/app"
)

var leadsLimit int

func init() {
	leadsCmd.Flags().IntVar(&leadsLimit, "limit", 20, "number of leads to show")
	rootCmd.AddCommand(leadsCmd)
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Lists the most recent quote requests stored in MySQL.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.DSN == "" {
			return errors.New("leads needs MYSQL_DSN or DATABASE_URL")
		}
		db, err := app.NewDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		leads, err := app.NewMySQLLeadStore(db).RecentLeads(cmd.Context(), leadsLimit)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Received", "Name", "Email", "Phone", "Service", "Location", "Source"})
		for _, l := range leads {
			t.AppendRow(table.Row{
				l.CreatedAt.Local().Format("2006-01-02 15:04"),
				l.Name, l.Email, l.Phone, l.Service, l.Location, l.SourcePath,
			})
		}
		t.Render()
		return nil
	},
}
