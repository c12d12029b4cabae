package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// environment variables via Viper, and registers all subcommands. This
// wiring keeps the configuration surface consistent across the root run,
// verify, and commands, and keeps environment overrides predictable for
// operators.
func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgArray, "array", "a", "", "Array management FQDN or IP")
	rootCmd.PersistentFlags().StringVarP(&cfgUser, "user", "u", "", "Array username")
	rootCmd.PersistentFlags().StringVar(&cfgPassword, "password", "", "Array password (or set SVCHECK_PASSWORD)")
	rootCmd.PersistentFlags().StringVarP(&cfgOutputDir, "output-dir", "o", "./output/", "Directory for report and log files")
	rootCmd.PersistentFlags().StringVarP(&cfgManifest, "manifest", "m", "", "Path to YAML manifest overriding the command battery")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Log debug detail to the console as well as the log file")

	// Bind env with Viper
	_ = viper.BindPFlag("array", rootCmd.PersistentFlags().Lookup("array"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("output-dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("SVCHECK")
	viper.AutomaticEnv()

	// Pull in environment overrides on init
	cobra.OnInitialize(func() {
		if v := viper.GetString("array"); v != "" {
			cfgArray = v
		}
		if v := viper.GetString("user"); v != "" {
			cfgUser = v
		}
		if v := viper.GetString("password"); v != "" {
			cfgPassword = v
		}
		if v := viper.GetString("output-dir"); v != "" {
			cfgOutputDir = v
		}
		if v := viper.GetString("manifest"); v != "" {
			cfgManifest = v
		}
		if viper.IsSet("verbose") {
			cfgVerbose = viper.GetBool("verbose")
		}
	})

	// Add subcommands
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(commandsCmd)
}
