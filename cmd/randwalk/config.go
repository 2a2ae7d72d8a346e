package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/randwalk/internal/config"
)

func configCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "randwalk.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	themes := &cobra.Command{
		Use:   "themes",
		Short: "list colour themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ThemeNames() {
				marker := " "
				if name == cfg.Sketch.Theme {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, name)
			}
		},
	}

	c.AddCommand(initCmd, themes)
	return c
}
