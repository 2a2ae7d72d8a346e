package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/randwalk/internal/storage"
)

func runsDir() string {
	return filepath.Join(cfg.DataDir, "runs")
}

func runsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "manage saved walks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "list saved walks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(runsDir(), logger)
			runs, err := st.List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTIME\tSEED\tDEPTH\tALGO\tPOINTS")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%d\n",
					r.ID,
					r.Name,
					r.Timestamp.Format("2006-01-02 15:04"),
					r.Seed,
					r.Depth,
					r.Algo,
					r.Points,
				)
			}
			return w.Flush()
		},
	}

	plot := &cobra.Command{
		Use:   "plot <id>",
		Short: "show a saved walk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(runsDir(), logger)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			w, err := st.LoadPoints(args[0])
			if err != nil {
				return err
			}
			printWalk(meta.Config(), w, meta.Metrics)
			return nil
		},
	}

	c.AddCommand(list, plot)
	return c
}
