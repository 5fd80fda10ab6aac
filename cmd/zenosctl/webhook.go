package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
	"github.com/spf13/cobra"
)

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Provider callback tooling",
	}
	cmd.AddCommand(webhookSimulateCmd())
	return cmd
}

func webhookSimulateCmd() *cobra.Command {
	var (
		url          string
		callbackPath string
		reference    string
		status       string
		body         string
		key          string
		keyFile      string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Send a signed provider callback to a running server",
		Long: `Sign a callback the way the provider does and POST it. The signature covers
--callback-path, which must match the server's configured callback path.`,
		Example: `  zenosctl webhook simulate --reference TRX-1735718400000-0A1B2C3D4E --status paid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			privatePEM, err := readKey(key, keyFile)
			if err != nil {
				return err
			}
			codec, err := signature.NewCodec(privatePEM, "")
			if err != nil {
				return err
			}

			var payload any
			if body != "" {
				raw, err := readBody(body)
				if err != nil {
					return err
				}
				canonical, err := signature.CanonicalJSON(raw)
				if err != nil {
					return fmt.Errorf("body is not valid JSON: %w", err)
				}
				payload = json.RawMessage(canonical)
			} else {
				if reference == "" {
					return fmt.Errorf("--reference or --body is required")
				}
				fields := map[string]any{"merchant_transaction_id": reference}
				if status != "" {
					fields["status"] = status
				}
				payload = fields
			}

			timestamp := strconv.FormatInt(time.Now().Unix(), 10)
			signed, sig, err := codec.SignPayload(http.MethodPost, callbackPath, payload, timestamp)
			if err != nil {
				return err
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, url, bytes.NewReader(signed))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Signature", sig)
			req.Header.Set("X-Timestamp", timestamp)

			resp, err := (&http.Client{Timeout: timeout}).Do(req)
			if err != nil {
				return fmt.Errorf("deliver webhook: %w", err)
			}
			defer resp.Body.Close()

			answer, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", resp.Status, strings.TrimSpace(string(answer)))

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("server answered %d", resp.StatusCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:8080/api/transactions/webhook/zenospay", "Webhook URL")
	cmd.Flags().StringVar(&callbackPath, "callback-path", envOr("ZENOS_WEBHOOK_ENDPOINT", "/api/transactions/webhook/zenospay"), "Path covered by the signature")
	cmd.Flags().StringVar(&reference, "reference", "", "merchant_transaction_id to settle")
	cmd.Flags().StringVar(&status, "status", "paid", "Provider status to report; empty omits the field")
	cmd.Flags().StringVar(&body, "body", "", "Full JSON payload, or @file; overrides --reference and --status")
	cmd.Flags().StringVar(&key, "private-key", envOr("ZENOS_PRIVATE_KEY", ""), "Private key PEM (default $ZENOS_PRIVATE_KEY)")
	cmd.Flags().StringVar(&keyFile, "private-key-file", "", "Read the private key from a file")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP timeout")

	return cmd
}

// readBody returns s, or the contents of the file when s starts with @
func readBody(s string) ([]byte, error) {
	if name, ok := strings.CutPrefix(s, "@"); ok {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return data, nil
	}
	return []byte(s), nil
}
