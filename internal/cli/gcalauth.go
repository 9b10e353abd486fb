package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dothis/pkg/gcalendar"
)

func newGcalAuthCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Long: `Run the OAuth consent flow for desktop ("installed") Google credentials.

Open the printed URL, approve access, and paste the authorization code back.
The token is written to --token, which the API server reads through
google_calendar.token_path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("reading credentials: %w", err)
			}
			auth, err := gcalendar.NewDesktopAuth(creds)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render("Open this URL in your browser:"))
			fmt.Fprintln(w, auth.AuthCodeURL())
			fmt.Fprint(w, "\nAuthorization code: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				if err != nil {
					return fmt.Errorf("reading authorization code: %w", err)
				}
				return errors.New("no authorization code entered")
			}

			tok, err := auth.Exchange(cmd.Context(), code)
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintln(w, okStyle.Render("Token saved to "+tokenPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "credentials.json", "OAuth desktop credentials JSON")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the token")
	return cmd
}
