// Package config handles repoship's configuration.
//
// Settings are resolved in three layers, lowest precedence first:
//
//  1. Built-in defaults (New)
//  2. An optional repoship.yaml config file and REPOSHIP_* environment
//     variables, read through viper (LoadFromEnvironment)
//  3. Command-line flags (ParseFlags)
//
// Finalize validates the merged result and derives values that depend on the
// environment, such as the absolute project path and the default log file
// location under the XDG data directory.
//
// The config file is searched for in the current directory and in
// $XDG_CONFIG_HOME/repoship. Interactive values - the repository name and the
// confirmation - are deliberately not configuration: they are gathered by the
// publisher at run time unless provided with -name and -yes.
package config
