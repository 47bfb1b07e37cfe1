// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/hex"
	"os"

	"github.com/spf13/cobra"

	"github.com/absmach/ate"
	"github.com/absmach/ate/pa"
	"github.com/absmach/ate/version"
)

// Keep client handle in global var.
var client *ate.Client

func SetClient(c *ate.Client) {
	client = c
}

var cmdProvision = []cobra.Command{
	{
		Use:   "keycert <sku> <device_serial>",
		Short: "Issue key and certificate",
		Long:  `Requests a device key pair and the matching endorsed certificate for the given SKU.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			res, err := client.IssueKeyAndCert(cmd.Context(), args[0], []byte(args[1]))
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, res)
		},
	},
	{
		Use:   "endorse <sku> <key_label> <tbs_file>",
		Short: "Endorse certificate",
		Long:  `Sends a to-be-signed certificate to the appliance for endorsement and saves the result.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			tbs, err := os.ReadFile(args[2])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			req := &pa.EndorseCertsRequest{
				Sku: args[0],
				Bundles: []*pa.EndorseCertBundle{
					{KeyLabel: args[1], Tbs: tbs},
				},
			}
			res, err := client.EndorseCerts(cmd.Context(), req)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logSaveCertFiles(*cmd, args[1], res.GetCerts())
		},
	},
	{
		Use:   "derive <sku> <seed_label> <size_bytes> <diversifier>",
		Short: "Derive symmetric keys",
		Long:  `Derives a symmetric key on the appliance from the named seed and diversifier.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 4 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			size, err := parseSize(args[2])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			req := &pa.DeriveSymmetricKeysRequest{
				Sku: args[0],
				Params: []*pa.SymmetricKeygenParams{
					{SeedLabel: args[1], SizeBytes: size, Diversifier: []byte(args[3])},
				},
			}
			res, err := client.DeriveSymmetricKeys(cmd.Context(), req)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			keys := make([]string, 0, len(res.GetKeys()))
			for _, key := range res.GetKeys() {
				keys = append(keys, hex.EncodeToString(key))
			}
			logJSONCmd(*cmd, keys)
		},
	},
	{
		Use:   "register <sku> <device_id_hex> <data_file>",
		Short: "Register device",
		Long:  `Registers a provisioned device record with the registry buffer.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			deviceID, err := hex.DecodeString(args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			data, err := os.ReadFile(args[2])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			req := &pa.RegistrationRequest{
				Record: &pa.DeviceRecord{
					Sku:      args[0],
					DeviceId: deviceID,
					Data:     data,
				},
			}
			if _, err := client.RegisterDevice(cmd.Context(), req); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logOKCmd(*cmd)
		},
	},
}

// NewProvisionCmd returns the provisioning command tree.
func NewProvisionCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "provision [keycert | endorse | derive | register]",
		Short: "Provisioning operations",
		Long:  `Provisioning operations against the Provisioning Appliance.`,
	}

	for i := range cmdProvision {
		cmd.AddCommand(&cmdProvision[i])
	}

	return &cmd
}

// NewSessionCmd returns the SKU session command tree.
func NewSessionCmd() *cobra.Command {
	initCmd := cobra.Command{
		Use:   "init <sku> <sku_auth>",
		Short: "Open SKU session",
		Long:  `Authenticates for the given SKU and prints the issued session token.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := client.InitSession(cmd.Context(), args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, map[string]string{"sku_session_token": client.SessionToken()})
		},
	}

	closeCmd := cobra.Command{
		Use:   "close <sku_session_token>",
		Short: "Close SKU session",
		Long:  `Closes the SKU session identified by the given token.`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			client.ResumeSession(args[0])
			if err := client.CloseSession(cmd.Context()); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logOKCmd(*cmd)
		},
	}

	cmd := cobra.Command{
		Use:   "session [init | close]",
		Short: "SKU session management",
		Long:  `Opens and closes SKU sessions on the Provisioning Appliance.`,
	}
	cmd.AddCommand(&initCmd)
	cmd.AddCommand(&closeCmd)

	return &cmd
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Long:  `Prints the build stamp of the binary.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(version.Formatted())
		},
	}
}
