package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Snider/quotes/pkg/quotes"
	"github.com/spf13/cobra"
)

var exportCmd = NewExportCmd()

func NewExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the quote collection as JSON or YAML.",
		Long: `Write the active quote collection in a format that --file can load back.
The format and compression default to the output file's extension, or to
uncompressed JSON on standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile, _ := cmd.Flags().GetString("output")
			formatName, _ := cmd.Flags().GetString("format")
			compression, _ := cmd.Flags().GetString("compression")

			format := quotes.FormatFromPath(outputFile)
			if formatName != "" {
				var err error
				format, err = quotes.ParseFormat(formatName)
				if err != nil {
					return err
				}
			}
			if compression == "" {
				compression = compressionFromPath(outputFile)
			}
			if err := checkCompression(compression); err != nil {
				return err
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			data, err := quotes.Encode(store.All(), format, compression)
			if err != nil {
				return err
			}

			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				return fmt.Errorf("error writing quotes to file: %w", err)
			}
			loggerFrom(cmd).Info("exported quotes", "path", outputFile, "count", store.Len(), "format", format, "compression", compression)
			return nil
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "Output file (default standard output)")
	exportCmd.Flags().String("format", "", "Output format (json or yaml)")
	exportCmd.Flags().String("compression", "", "Compression format (none, gz, or xz)")
	return exportCmd
}

func GetExportCmd() *cobra.Command {
	return exportCmd
}

func init() {
	RootCmd.AddCommand(GetExportCmd())
}

func compressionFromPath(path string) string {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return "gz"
	case strings.HasSuffix(path, ".xz"):
		return "xz"
	default:
		return "none"
	}
}

func checkCompression(compression string) error {
	switch compression {
	case "none", "gz", "xz":
		return nil
	default:
		return fmt.Errorf("invalid compression: %s (must be 'none', 'gz', or 'xz')", compression)
	}
}
