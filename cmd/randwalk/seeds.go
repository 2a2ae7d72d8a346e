package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tidwall/match"
	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/registry"
)

func seedsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "seeds",
		Short: "inspect and serve the seed registry",
	}
	c.AddCommand(seedsListCommand(), seedsServeCommand())
	return c
}

func seedsListCommand() *cobra.Command {
	var pattern string
	c := &cobra.Command{
		Use:   "list",
		Short: "list registry entries with their resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := fetchDocument(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSEED\tDEPTH\tALGO\tSTATUS")
			for _, name := range doc.Names() {
				if !match.Match(name, pattern) {
					continue
				}
				rc, err := registry.Resolve(doc, name)
				if err != nil {
					entry, _ := doc.Find(name)
					fmt.Fprintf(w, "%s\t%s\t-\t-\t%v\n", name, entry.RawSeed(), err)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\tok\n", rc.Name, rc.Seed, rc.Depth, rc.Algo)
			}
			return w.Flush()
		},
	}
	c.Flags().StringVar(&pattern, "match", "*", "glob filter on entry names")
	return c
}

func seedsServeCommand() *cobra.Command {
	var (
		addr string
		key  string
		file string
	)
	c := &cobra.Command{
		Use:   "serve",
		Short: "serve a registry file over the redis protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = cfg.Registry.Path
			}
			if file == "" {
				return fmt.Errorf("no registry file to serve")
			}

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			go func() {
				<-cmd.Context().Done()
				ln.Close()
			}()

			srv := registry.NewServer(key, &registry.FileFetcher{Path: file}, logger)
			fmt.Printf("serving %s as %q on %s\n", file, key, ln.Addr())
			err = srv.Serve(ln)
			if cmd.Context().Err() != nil || errors.Is(err, net.ErrClosed) {
				logger.Info("registry server stopped", zap.String("addr", addr))
				return nil
			}
			return err
		},
	}
	c.Flags().StringVar(&addr, "addr", ":6380", "listen address")
	c.Flags().StringVar(&key, "key", "seeds", "key the document is served under")
	c.Flags().StringVar(&file, "file", "", "registry file (default: the configured registry path)")
	return c
}
