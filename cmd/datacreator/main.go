// Command datacreator enumerates a fixed grid of typed arguments through
// the engine and writes the results as a CSV testrunner can later replay,
// per spec.md §6: "data creators accept --output-dir."
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya-go/dhatu"
	"github.com/ambuda-org/vidyut-prakriya-go/internal/obslog"
	"github.com/ambuda-org/vidyut-prakriya-go/tinanta"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		obslog.Default.Error("datacreator: run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "datacreator",
		Short: "Generate golden tinanta test-case CSVs from a fixed dhatu/lakara grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return createTinantaCSV(outputDir)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "directory to write the generated CSV files into")
	return cmd
}

// sampleDhatus is a small, fixed grid of well-attested roots spanning a
// few gaṇas, the same set spec.md §8's concrete scenarios use.
var sampleDhatus = []struct {
	upadesha string
	gana     dhatu.Gana
}{
	{"BU", dhatu.Bhvadi},
	{"gam", dhatu.Bhvadi},
	{"kf", dhatu.Tanadi},
}

var sampleLakaras = []tinanta.Lakara{tinanta.Lat, tinanta.Lot, tinanta.Lan}

func createTinantaCSV(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("datacreator: create %s: %w", outputDir, err)
	}

	path := filepath.Join(outputDir, "tinanta.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datacreator: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"upadesha", "gana", "lakara", "purusha", "vacana", "prayoga", "expected"}); err != nil {
		return fmt.Errorf("datacreator: write header: %w", err)
	}

	rows := 0
	for _, d := range sampleDhatus {
		for _, l := range sampleLakaras {
			args, err := tinanta.NewBuilder().
				Dhatu(dhatu.New(d.upadesha, d.gana)).
				Lakara(l).
				Purusha(tinanta.Prathama).
				Vacana(tinanta.Eka).
				Prayoga(tinanta.Kartari).
				Build()
			if err != nil {
				obslog.Default.Warn("datacreator: skipping row", "dhatu", d.upadesha, "lakara", l.String(), "error", err)
				continue
			}

			p, err := tinanta.Derive(args)
			if err != nil {
				obslog.Default.Warn("datacreator: derivation failed", "dhatu", d.upadesha, "lakara", l.String(), "error", err)
				continue
			}

			record := []string{d.upadesha, fmt.Sprintf("%d", int(d.gana)), lakaraSlug(l), "prathama", "eka", "kartari", p.Text()}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("datacreator: write row: %w", err)
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("datacreator: flush: %w", err)
	}

	obslog.Default.Info("datacreator: wrote test cases", "path", path, "rows", rows)
	return nil
}

func lakaraSlug(l tinanta.Lakara) string {
	m := map[tinanta.Lakara]string{
		tinanta.Lat: "lat", tinanta.Lit: "lit", tinanta.Lut: "lut", tinanta.Lrt: "lrt",
		tinanta.Lot: "lot", tinanta.Lan: "lan", tinanta.VidhiLin: "vidhilin",
		tinanta.AshirLin: "ashirlin", tinanta.Lun: "lun", tinanta.Lrn: "lrn", tinanta.Let: "let",
	}
	return m[l]
}
