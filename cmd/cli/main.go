// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the cli.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/absmach/ate"
	"github.com/absmach/ate/cli"
)

func main() {
	opts := ate.Options{}

	// Root
	rootCmd := &cobra.Command{
		Use: "ate-cli",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Name() == "version" {
				return
			}
			cliOpts, err := cli.ParseConfig(opts)
			if err != nil {
				log.Fatalf("Failed to parse config: %s", err)
			}
			client, err := ate.Connect(cliOpts, nil)
			if err != nil {
				log.Fatalf("Failed to connect to provisioning appliance: %s", err)
			}
			if cli.SessionToken != "" {
				client.ResumeSession(cli.SessionToken)
			}
			cli.SetClient(client)
		},
	}

	// API commands
	sessionCmd := cli.NewSessionCmd()
	provisionCmd := cli.NewProvisionCmd()
	versionCmd := cli.NewVersionCmd()

	// Root Commands
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(
		&opts.PAAddress,
		"pa-address",
		"a",
		opts.PAAddress,
		"Provisioning Appliance address",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&opts.EnableMTLS,
		"mtls",
		"m",
		opts.EnableMTLS,
		"Enable mTLS towards the Provisioning Appliance",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.SessionToken,
		"session-token",
		"t",
		cli.SessionToken,
		"SKU session token issued by session init",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		cli.ConfigPath,
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
