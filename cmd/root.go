package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "staygen [command]",
	Short: "Synthetic lodging-marketplace dataset generator",
	Long: `Generates a relationally consistent synthetic dataset for a lodging
marketplace: users, accommodations, bookings, payments and every table
hanging off them. Output goes to CSV files or straight into PostgreSQL.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; flags and real env vars win.
		_ = godotenv.Load()
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
