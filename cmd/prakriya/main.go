// Command prakriya is the CLI surface over the derivation engine (spec.md
// §6): given typed arguments for one of the four driver packages, it
// prints the resulting surface text and, optionally, its rule history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
	"github.com/ambuda-org/vidyut-prakriya-go/internal/obslog"
	"github.com/ambuda-org/vidyut-prakriya-go/internal/rconfig"
	"github.com/ambuda-org/vidyut-prakriya-go/tinanta"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		obslog.Default.Error("prakriya: command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "prakriya",
		Short: "Derive Sanskrit word forms from typed grammatical arguments",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rconfig.LoadOrDefault(configPath)
			if err != nil {
				return fmt.Errorf("prakriya: %w", err)
			}
			obslog.Default = obslog.New(obslog.Options{
				Name:  "prakriya",
				Level: cfg.LogLevel,
				JSON:  cfg.JSONLogs,
			})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "prakriya.toml",
		"path to a TOML config file (log_level, json_logs, data_dir); missing file is not an error")
	root.AddCommand(newTinantaCmd())
	return root
}

func newTinantaCmd() *cobra.Command {
	var (
		upadesha string
		gana     int
		lakara   string
		purusha  string
		vacana   string
		prayoga  string
		showHist bool
	)

	cmd := &cobra.Command{
		Use:   "tinanta",
		Short: "Derive a finite verb (tiṅanta) form",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := dhatu.GanaFromInt(gana)
			if err != nil {
				return fmt.Errorf("prakriya: %w", err)
			}

			l, err := parseLakara(lakara)
			if err != nil {
				return err
			}
			pu, err := parsePurusha(purusha)
			if err != nil {
				return err
			}
			va, err := parseVacana(vacana)
			if err != nil {
				return err
			}
			pr, err := parsePrayoga(prayoga)
			if err != nil {
				return err
			}

			tArgs, err := tinanta.NewBuilder().
				Dhatu(dhatu.New(upadesha, g)).
				Lakara(l).
				Purusha(pu).
				Vacana(va).
				Prayoga(pr).
				Build()
			if err != nil {
				return fmt.Errorf("prakriya: %w", err)
			}

			p, err := tinanta.Derive(tArgs)
			if err != nil {
				return fmt.Errorf("prakriya: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), p.Text())
			if showHist {
				for _, h := range p.History() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", h.Rule, h.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&upadesha, "dhatu", "", "dhātu in upadeśa form, e.g. BU (required)")
	cmd.Flags().IntVar(&gana, "gana", 1, "gaṇa number, 1-10")
	cmd.Flags().StringVar(&lakara, "lakara", "lat", "lakāra: lat|lit|lut|lrt|lot|lan|vidhilin|ashirlin|lun|lrn|let")
	cmd.Flags().StringVar(&purusha, "purusha", "prathama", "puruṣa: prathama|madhyama|uttama")
	cmd.Flags().StringVar(&vacana, "vacana", "eka", "vacana: eka|dvi|bahu")
	cmd.Flags().StringVar(&prayoga, "prayoga", "kartari", "prayoga: kartari|karmani|bhave")
	cmd.Flags().BoolVar(&showHist, "history", false, "print the rule-application history")
	cmd.MarkFlagRequired("dhatu")

	return cmd
}

func parseLakara(s string) (tinanta.Lakara, error) {
	m := map[string]tinanta.Lakara{
		"lat": tinanta.Lat, "lit": tinanta.Lit, "lut": tinanta.Lut, "lrt": tinanta.Lrt,
		"lot": tinanta.Lot, "lan": tinanta.Lan, "vidhilin": tinanta.VidhiLin,
		"ashirlin": tinanta.AshirLin, "lun": tinanta.Lun, "lrn": tinanta.Lrn, "let": tinanta.Let,
	}
	l, ok := m[s]
	if !ok {
		return 0, fmt.Errorf("prakriya: unknown lakara %q", s)
	}
	return l, nil
}

func parsePurusha(s string) (tinanta.Purusha, error) {
	m := map[string]tinanta.Purusha{"prathama": tinanta.Prathama, "madhyama": tinanta.Madhyama, "uttama": tinanta.Uttama}
	p, ok := m[s]
	if !ok {
		return 0, fmt.Errorf("prakriya: unknown purusha %q", s)
	}
	return p, nil
}

func parseVacana(s string) (tinanta.Vacana, error) {
	m := map[string]tinanta.Vacana{"eka": tinanta.Eka, "dvi": tinanta.Dvi, "bahu": tinanta.Bahu}
	v, ok := m[s]
	if !ok {
		return 0, fmt.Errorf("prakriya: unknown vacana %q", s)
	}
	return v, nil
}

func parsePrayoga(s string) (tinanta.Prayoga, error) {
	m := map[string]tinanta.Prayoga{"kartari": tinanta.Kartari, "karmani": tinanta.Karmani, "bhave": tinanta.Bhave}
	p, ok := m[s]
	if !ok {
		return 0, fmt.Errorf("prakriya: unknown prayoga %q", s)
	}
	return p, nil
}
