package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"kr.dev/diffy"
)

const timeFormat = "2006-01-02 15:04:05.000000000 -0700"

func newRootCmd(status *int) *cobra.Command {
	v := viper.New()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "diffy"})

	var (
		cfgFile string
		oldName string
		newName string
	)

	cmd := &cobra.Command{
		Use:   "diffy [flags] old new",
		Short: "Compare files line by line",
		Long: heredoc.Doc(`
			Compare files line by line.

			The exit status is 0 if the files are the same,
			1 if they differ, and 2 if there was trouble.
		`),
		Example: heredoc.Doc(`
			# Unified diff with 5 lines of context
			$ diffy -U 5 old.txt new.txt

			# Mark changed words, using the linear-space Myers algorithm
			$ diffy --words -a ml old.txt new.txt

			# Side by side, 120 columns wide
			$ diffy -c -W 120 old.txt new.txt
		`),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			if v.GetBool("debug") {
				logger.SetLevel(log.DebugLevel)
			}
			logger.Debug("config", "file", v.ConfigFileUsed())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := diffy.ParseAlgorithm(v.GetString("algorithm"))
			if err != nil {
				return err
			}
			a, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			aName := label(args[0], oldName)
			if _, ok := os.LookupEnv("GIT_PREFIX"); ok {
				if base, ok := os.LookupEnv("BASE"); ok {
					aName = base
				}
			}
			bName := label(args[1], newName)

			unified := true
			opts := []diffy.Option{
				diffy.UseAlgorithm(alg),
				diffy.Context(v.GetInt("unified")),
				diffy.Names(aName, bName),
				diffy.IgnoreWhitespace(v.GetBool("ignore-whitespace")),
				diffy.IgnoreLineEndings(v.GetBool("ignore-line-endings")),
			}
			switch {
			case v.GetBool("debug"):
				opts = append(opts, diffy.EmitDump)
				unified = false
			case v.GetBool("column"):
				width := v.GetInt("width")
				if width <= 0 {
					width = termWidth()
				}
				if v.GetBool("line") {
					opts = append(opts, diffy.EmitColumnLines(width))
				} else {
					opts = append(opts, diffy.EmitColumns(width))
				}
				unified = false
			case v.GetBool("words") && v.GetBool("line"):
				opts = append(opts, diffy.EmitWordLines)
				unified = false
			case v.GetBool("words"):
				opts = append(opts, diffy.EmitWords)
				unified = false
			}

			start := time.Now()
			out, changed, err := diffy.Diff(cmd.Context(), string(a), string(b), opts...)
			if err != nil {
				return err
			}
			logger.Debug("compared",
				"algorithm", alg,
				"old", args[0], "old_bytes", len(a),
				"new", args[1], "new_bytes", len(b),
				"changed", changed,
				"elapsed", time.Since(start),
			)

			w := cmd.OutOrStdout()
			if !changed {
				// Quiet in unified mode, like diff(1).
				if !unified {
					fmt.Fprintln(w, "No changes.")
				}
				*status = exitSame
				return nil
			}
			fmt.Fprint(w, out)
			*status = exitChanged
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/diffy/config.yaml)")

	f := cmd.Flags()
	f.StringP("algorithm", "a", diffy.DefaultAlgorithm.String(), "Diff algorithm: myers-greedy (mg), myers-linear (ml), patience (p)")
	f.IntP("unified", "U", 3, "Lines of context around each change")
	f.StringVarP(&oldName, "old-file", "o", "", "Name to show for the old file")
	f.StringVarP(&newName, "new-file", "n", "", "Name to show for the new file")
	f.BoolP("ignore-line-endings", "i", false, "Treat CRLF line endings as LF")
	f.BoolP("ignore-whitespace", "w", false, "Ignore changes that only touch whitespace")
	f.Bool("words", false, "Mark the changed words of each line")
	f.BoolP("column", "c", false, "Show the files side by side")
	f.IntP("width", "W", 0, "Width of the side by side view (default is the terminal width)")
	f.BoolP("line", "l", false, "With --words or --column, mark whole lines instead of words")
	f.BoolP("debug", "d", false, "List every edit and log debug output")

	for _, name := range []string{"algorithm", "unified", "ignore-line-endings", "ignore-whitespace", "words", "column", "width", "line", "debug"} {
		v.BindPFlag(name, f.Lookup(name))
	}
	v.SetEnvPrefix("DIFFY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// termWidth returns the width of the terminal on stdout, or 80.
func termWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// label returns the name to show for path in the diff header.
// Regular files get their modification time, as diff -u does.
func label(path, name string) string {
	if name != "" {
		return name
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return path
	}
	return path + "\t" + fi.ModTime().Format(timeFormat)
}

func loadConfig(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		return nil
	}

	dir, err := configDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "diffy"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "diffy"), nil
}
