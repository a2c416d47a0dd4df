// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
	"github.com/spf13/cobra"
)

const version = "v0.3.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Self-balancing binary search trees you can poke at [Version: %s%s%s]
`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	manager := workload.NewManager()
	strategyHelp := strategyUsage(manager)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Build a tree, strip its extremes and report the invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Demo inserts keys, removes the maximum and minimum repeatedly, and checks balance and ordering before and after"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			flags := cmd.Flags()
			if flags.Changed("size") {
				config.Demo.Size, _ = flags.GetInt("size")
			}
			if flags.Changed("rounds") {
				config.Demo.Rounds, _ = flags.GetInt("rounds")
			}
			if flags.Changed("seed") {
				config.Demo.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("strategy") {
				config.Demo.Strategy, _ = flags.GetString("strategy")
			}

			strategy, err := manager.Get(config.Demo.Strategy)
			if err != nil {
				return err
			}

			report, err := runDemo(DemoOptions{
				Size:     config.Demo.Size,
				Rounds:   config.Demo.Rounds,
				Seed:     config.Demo.Seed,
				Strategy: strategy,
			})
			if report != nil {
				report.Write(cmd.OutOrStdout())
			}
			return err
		},
	}
	cmdDemo.Flags().Int("size", defaultConfig.Demo.Size, "number of keys to insert")
	cmdDemo.Flags().Int("rounds", defaultConfig.Demo.Rounds, "how many times to remove the maximum and the minimum")
	cmdDemo.Flags().Int64("seed", defaultConfig.Demo.Seed, "random seed")
	cmdDemo.Flags().String("strategy", defaultConfig.Demo.Strategy, strategyHelp)

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Random add/remove run with invariant checks after every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			flags := cmd.Flags()
			if flags.Changed("ops") {
				config.Stress.Operations, _ = flags.GetInt("ops")
			}
			if flags.Changed("keys") {
				config.Stress.KeyRange, _ = flags.GetInt("keys")
			}
			if flags.Changed("seed") {
				config.Stress.Seed, _ = flags.GetInt64("seed")
			}

			opts := StressOptions{
				Operations: config.Stress.Operations,
				KeyRange:   config.Stress.KeyRange,
				Seed:       config.Stress.Seed,
			}
			if progress, _ := flags.GetBool("progress"); progress {
				opts.Progress = cmd.ErrOrStderr()
			}

			result, err := runStress(opts)
			if err != nil {
				return err
			}
			result.Write(cmd.OutOrStdout())
			return nil
		},
	}
	cmdStress.Flags().Int("ops", defaultConfig.Stress.Operations, "number of operations")
	cmdStress.Flags().Int("keys", defaultConfig.Stress.KeyRange, "keys are drawn from [0, keys)")
	cmdStress.Flags().Int64("seed", defaultConfig.Stress.Seed, "random seed")
	cmdStress.Flags().Bool("progress", false, "show a progress bar")

	var cmdPrint = &cobra.Command{
		Use:   "print [keys...]",
		Short: "Draw the tree built from the given keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Print inserts the integer keys given as arguments, or --size keys from --strategy, and draws the tree"),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				name, _ := cmd.Flags().GetString("strategy")
				size, _ := cmd.Flags().GetInt("size")
				seed, _ := cmd.Flags().GetInt64("seed")
				strategy, err := manager.Get(name)
				if err != nil {
					return err
				}
				keys = strategy.Keys(size, rand.New(rand.NewSource(seed)))
			}

			tree := avl.NewOrdered[int]()
			for _, k := range keys {
				tree.Add(k)
			}

			var b strings.Builder
			if err := tree.Fprint(&b); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			fmt.Fprintf(cmd.OutOrStdout(), "size=%d height=%d bound=%.2f\n", tree.Size(), tree.Height(), avl.HeightBound(tree.Size()))

			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if err := clipboard.WriteAll(b.String()); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "📋 Copied tree drawing to clipboard.\n")
			}
			return nil
		},
	}
	cmdPrint.Flags().String("strategy", "ascending", strategyHelp)
	cmdPrint.Flags().Int("size", 15, "number of generated keys when none are given")
	cmdPrint.Flags().Int64("seed", 1, "random seed")
	cmdPrint.Flags().Bool("copy", false, "copy the drawing to the clipboard")

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Interactive command session on a tree of integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSessionFromFlags(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), `type "help" for commands, "quit" to leave`)
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), session, true)
		},
	}
	cmdRepl.Flags().String("file", "", "preload newline-separated integer keys from a file")

	var cmdTui = &cobra.Command{
		Use:   "tui",
		Short: "Terminal UI with a live drawing of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSessionFromFlags(cmd)
			if err != nil {
				return err
			}
			return runTUI(session)
		},
	}
	cmdTui.Flags().String("file", "", "preload newline-separated integer keys from a file")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating ~/.avlkit.yaml if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := getConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avlkit",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(cmdDemo, cmdStress, cmdPrint, cmdRepl, cmdTui, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

// strategyUsage lists every registered strategy with its description for the
// --strategy flag help.
func strategyUsage(manager *workload.Manager) string {
	var b strings.Builder
	b.WriteString("key strategy, one of:")
	for _, name := range manager.Names() {
		strategy, err := manager.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n  %s: %s", name, strategy.Description())
	}
	return b.String()
}

func newSessionFromFlags(cmd *cobra.Command) (*Session, error) {
	config := loadConfigOrDefault()
	session := NewSession(config.Session)

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return session, nil
	}

	keys, err := readKeysFromFile(path)
	if err != nil {
		return nil, err
	}
	added := session.Add(keys...)
	log.Printf("Loaded %d key(s) from %s (%d distinct)", len(keys), path, added)
	return session, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
