// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/vvdex/internal/core/access"
	"github.com/taibuivan/vvdex/internal/platform/sec"
)

// readSecret takes the first line of in, trimmed of the line ending.
func readSecret(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	secret := strings.TrimRight(line, "\r\n")
	if secret == "" {
		return "", errors.New("empty password on stdin")
	}
	return secret, nil
}

func newLoginCmd(app *cli) *cobra.Command {
	var operator string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange the admin password (read from stdin) for a token",
		Long: `Exchange the admin password for a bearer token.

The password is read from the first line of stdin and the token is printed
to stdout, ready for VVDEX_API_TOKEN:

  export VVDEX_API_TOKEN=$(vvctl login < password.txt)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}

			if err := app.connect(cmd); err != nil {
				return err
			}

			token, err := access.Login(cmd.Context(), app.client, access.Credentials{Operator: operator, Password: password})
			if err != nil {
				return err
			}

			app.logger.Info("token_issued", "expires_at", token.ExpiresAt)
			fmt.Fprintln(app.out, token.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "name recorded in the token for audit logs")
	return cmd
}

func newHashPasswordCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash of a password (read from stdin) for ADMIN_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}

			hash, err := sec.HashPassword(password)
			if err != nil {
				return err
			}

			fmt.Fprintln(app.out, hash)
			return nil
		},
	}
}
