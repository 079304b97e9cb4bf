// Package cmd implements the command-line interface for tubedl.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/batch"
	"github.com/tubedl/tubedl/color"
	"github.com/tubedl/tubedl/constant"
	"github.com/tubedl/tubedl/downloader"
	"github.com/tubedl/tubedl/icon"
	"github.com/tubedl/tubedl/key"
	"github.com/tubedl/tubedl/log"
	"github.com/tubedl/tubedl/style"
	"github.com/tubedl/tubedl/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addRequestFlags(rootCmd)
	rootCmd.Flags().StringP("out", "o", "", "Directory to save videos into, created if missing")
	rootCmd.Flags().BoolP("force", "f", false, "Overwrite existing files without asking")
	rootCmd.Flags().BoolP("quiet", "q", false, "Print only errors")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Resolve the page and print what would be downloaded")

	rootCmd.Flags().StringP("extension", "e", "", "File extension for saved videos")
	lo.Must0(viper.BindPFlag(key.DownloadExtension, rootCmd.Flags().Lookup("extension")))

	rootCmd.Flags().IntP("retries", "r", 0, "Retries for failed requests")
	lo.Must0(viper.BindPFlag(key.DownloadRetries, rootCmd.Flags().Lookup("retries")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd downloads a playlist or a single video.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Download videos and playlists from TUbe",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Download videos and playlists from TUbe"),
	Example: `  tubedl -u https://portal.tuwien.tv/View.aspx?id=123 -o lectures -c "$COOKIE"
  TUBEDL_COOKIE="$COOKIE" tubedl -u <url> -o lectures -i 3-5`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			return nil
		}

		_, err := parseRequest(cmd, true)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		req := lo.Must(parseRequest(cmd, true))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		log.WithFields(logrus.Fields{"url": req.url, "out": req.out}).Info("starting run")

		client := newClient(req.cookie)
		report, err := batch.Run(ctx, &batch.Options{
			Source:    newSource(client),
			URL:       req.url,
			Dir:       req.out,
			Extension: viper.GetString(key.DownloadExtension),
			Filter:    req.filter,
			DryRun:    lo.Must(cmd.Flags().GetBool("dry-run")),
			Download: downloader.Options{
				Client:  client,
				Retries: viper.GetInt(key.DownloadRetries),
				Force:   lo.Must(cmd.Flags().GetBool("force")),
				Quiet:   lo.Must(cmd.Flags().GetBool("quiet")),
			},
		})
		handleErr(err)
		handleErr(report.Err())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		handleErr(err)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
