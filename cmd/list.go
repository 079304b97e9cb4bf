package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/batch"
	"github.com/tubedl/tubedl/key"
)

func init() {
	rootCmd.AddCommand(listCmd)

	addRequestFlags(listCmd)
	listCmd.Flags().StringP("out", "o", "", "Directory used to compute the file paths in the output")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")

	listCmd.SetOut(os.Stdout)
}

// listCmd resolves a page and prints its entries without downloading them.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the videos found on a page without downloading them",
	Long: `Resolve a playlist or video page and print its entries.

Item selectors:
  first - first entry of the playlist
  last - last entry of the playlist
  all - every entry
  [number] - entry by index (starting from 0)
  [from]-[to] - entries by index range
  @[substring]@ - entries whose name contains substring`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := parseRequest(cmd, false)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		req := lo.Must(parseRequest(cmd, false))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		options := &batch.Options{
			Source:    newSource(newClient(req.cookie)),
			URL:       req.url,
			Dir:       req.out,
			Extension: viper.GetString(key.DownloadExtension),
			Filter:    req.filter,
			Out:       cmd.OutOrStdout(),
		}

		handleErr(batch.List(ctx, options, lo.Must(cmd.Flags().GetBool("json"))))
	},
}

func init() {
	listCmd.AddCommand(listSchemaCmd)
}

// listSchemaCmd prints the JSON Schema of list --json.
var listSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the list output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&batch.Output{})))
	},
}
