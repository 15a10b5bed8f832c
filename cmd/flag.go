// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag binds a command line flag to a configuration key
type Flag struct {
	config    string
	cli       string
	shorthand string
}

// NewFlag returns a flag named cli, bound to the config key
func NewFlag(config, cli string) *Flag {
	return &Flag{config: config, cli: cli}
}

// Short sets the one letter shorthand of the flag
func (f *Flag) Short(s string) *Flag {
	f.shorthand = s
	return f
}

// BindString registers a string flag on cmd and binds it to its config key
func (f *Flag) BindString(cmd *cobra.Command, value, usage string) {
	cmd.Flags().StringP(f.cli, f.shorthand, value, usage)
	f.bind(cmd)
}

// BindInt registers an int flag on cmd and binds it to its config key
func (f *Flag) BindInt(cmd *cobra.Command, value int, usage string) {
	cmd.Flags().IntP(f.cli, f.shorthand, value, usage)
	f.bind(cmd)
}

// BindBool registers a bool flag on cmd and binds it to its config key
func (f *Flag) BindBool(cmd *cobra.Command, value bool, usage string) {
	cmd.Flags().BoolP(f.cli, f.shorthand, value, usage)
	f.bind(cmd)
}

func (f *Flag) bind(cmd *cobra.Command) {
	cobra.CheckErr(viper.BindPFlag(f.config, cmd.Flags().Lookup(f.cli)))
}
