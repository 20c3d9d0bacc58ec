package main

import (
	"catalog/pkg/config"
	"catalog/pkg/tlscert"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Read()

	var (
		certFile string
		keyFile  string
		hosts    []string
		days     int
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "certgen",
		Short: "Generate a self-signed TLS certificate for local development",
		Long: "certgen writes a self-signed certificate and private key that the catalog server " +
			"can use with TLS_ENABLED=true. Existing files are kept unless --force is set.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := tlscert.Options{
				CertFile: certFile,
				KeyFile:  keyFile,
				Hosts:    hosts,
				ValidFor: time.Duration(days) * 24 * time.Hour,
			}

			if force {
				if err := tlscert.Generate(opts); err != nil {
					return err
				}
			} else {
				generated, err := tlscert.EnsureSelfSigned(opts)
				if err != nil {
					return err
				}
				if !generated {
					fmt.Fprintf(cmd.OutOrStdout(), "certificate already exists at %s, use --force to replace it\n", certFile)
					return nil
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s for %s\n", certFile, keyFile, strings.Join(hosts, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&certFile, "cert", defaults.TLSCertFile, "certificate output path")
	cmd.Flags().StringVar(&keyFile, "key", defaults.TLSKeyFile, "private key output path")
	cmd.Flags().StringSliceVar(&hosts, "host", defaults.Hosts(), "DNS name or IP the certificate is valid for (repeatable)")
	cmd.Flags().IntVar(&days, "days", 365, "validity in days")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}
