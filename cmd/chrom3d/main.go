package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nimezhu/chrom3d"
	"github.com/nimezhu/chrom3d/structure"
)

type config struct {
	Alpha   float64 `toml:"alpha"`   //contact-to-distance conversion exponent
	Verbose bool    `toml:"verbose"` //debug logging
}

var (
	cfgPath string
	cfg     = config{Alpha: 4}
)

var rootCmd = &cobra.Command{
	Use:   "chrom3d",
	Short: "sparse 3-D chromosome structure toolkit",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath != "" {
			b, err := os.ReadFile(cfgPath)
			if err != nil {
				return err
			}
			if err := toml.Unmarshal(b, &cfg); err != nil {
				return fmt.Errorf("config %s: %w", cfgPath, err)
			}
		}
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			cfg.Verbose = true
		}
		if cmd.Flags().Changed("alpha") {
			cfg.Alpha, _ = cmd.Flags().GetFloat64("alpha")
		}
		if cfg.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "print a summary of a structure or contact file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := chrom3d.Load(args[0])
		if err != nil {
			return err
		}
		c := s.Chrom
		fmt.Printf("name\t%s\n", c.Name)
		fmt.Printf("resolution\t%d\n", c.Res)
		fmt.Printf("range\t%d-%d\n", c.MinPos, c.MaxPos)
		fmt.Printf("slots\t%d\n", len(s.Slots()))
		fmt.Printf("points\t%d\n", len(s.Points()))
		fmt.Printf("offset\t%d\n", s.Offset)
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <contact list> <out>",
	Short: "build a structure from a contact list and serialize it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := structure.StructureFromBed(args[0], nil)
		if err != nil {
			return err
		}
		return s.WriteFile(args[1])
	},
}

var matCmd = &cobra.Command{
	Use:   "mat <contact list> <out.tsv>",
	Short: "write the contact matrix, or the normalized distance matrix with --dist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := structure.StructureFromBed(args[0], nil)
		if err != nil {
			return err
		}
		dist, _ := cmd.Flags().GetBool("dist")
		var mat interface {
			Dims() (int, int)
			At(int, int) float64
		}
		if dist {
			mat, err = structure.NormalizedDistMat(args[0], s, cfg.Alpha)
		} else {
			mat, err = structure.MatFromBed(args[0], s)
		}
		if err != nil {
			return err
		}
		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer out.Close()
		r, c := mat.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if j > 0 {
					fmt.Fprint(out, "\t")
				}
				fmt.Fprintf(out, "%g", mat.At(i, j))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var reduceCmd = &cobra.Command{
	Use:   "reduce <structure> <ratio> <out>",
	Short: "aggregate a structure to a coarser resolution",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := chrom3d.Load(args[0])
		if err != nil {
			return err
		}
		ratio, err := strconv.Atoi(args[1])
		if err != nil || ratio < 2 {
			return fmt.Errorf("ratio must be an integer > 1")
		}
		return structure.HighToLow(s, ratio).WriteFile(args[2])
	},
}

var alignCmd = &cobra.Command{
	Use:   "align <structure>...",
	Short: "rewrite structure files onto their consensus coordinate set",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		structures := make([]*structure.Structure, len(args))
		for i, path := range args {
			s, err := chrom3d.Load(path)
			if err != nil {
				return err
			}
			structures[i] = s
		}
		if err := structure.MakeCompatible(structures); err != nil {
			return err
		}
		for i, path := range args {
			if err := structures[i].WriteFile(path); err != nil {
				return err
			}
			logrus.Infof("aligned %s: %d points", path, len(structures[i].Points()))
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "TOML config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")
	rootCmd.PersistentFlags().Float64("alpha", 4, "contact-to-distance conversion exponent")
	matCmd.Flags().Bool("dist", false, "write the normalized distance matrix")
	rootCmd.AddCommand(infoCmd, convertCmd, matCmd, reduceCmd, alignCmd)
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
