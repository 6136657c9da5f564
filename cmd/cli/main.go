package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smallbatch-apps/cashfloat/internal/domain"
	"github.com/smallbatch-apps/cashfloat/internal/infrastructure/auth"
)

var (
	baseURL   string
	timeout   time.Duration
	authToken string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cashfloat-cli",
		Short: "Cashfloat CLI tool",
		Long:  `A command line interface for interacting with the cashfloat API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the cashfloat API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Bearer token (when the server runs with auth enabled)")

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the cash dashboard summary",
		Run: func(cmd *cobra.Command, args []string) {
			body, err := getJSON("/api/v1/summary")
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			printJSON(body)
		},
	}
}

func ledgerCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show the running-balance ledger",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/ledger"
			sep := "?"
			if startDate != "" {
				path += sep + "start_date=" + startDate
				sep = "&"
			}
			if endDate != "" {
				path += sep + "end_date=" + endDate
			}

			body, err := getJSON(path)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			printLedger(body)
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD), defaults to the current week")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD), defaults to today")

	return cmd
}

func reconcileCmd() *cobra.Command {
	var register, deposit, notes, date string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Record a physical cash count",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"register_actual": register,
				"deposit_actual":  deposit,
			}
			if notes != "" {
				payload["notes"] = notes
			}
			if date != "" {
				payload["date"] = date + "T00:00:00Z"
			}

			body, err := postJSON("/api/v1/reconciliations/", payload)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			printJSON(body)
		},
	}

	cmd.Flags().StringVar(&register, "register", "", "Counted register drawer total")
	cmd.Flags().StringVar(&deposit, "deposit", "", "Counted safety deposit total")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().StringVar(&date, "date", "", "Count date (YYYY-MM-DD), defaults to today")
	cmd.MarkFlagRequired("register")
	cmd.MarkFlagRequired("deposit")

	return cmd
}

func tokenCmd() *cobra.Command {
	var secret, userID, name, role string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a JWT for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := auth.NewJWTManager(secret, duration)
			token, err := manager.Generate(&domain.User{
				ID:   userID,
				Name: name,
				Role: domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (must match the server's)")
	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&name, "name", "", "User display name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleEmployee), "Role: admin or employee")
	cmd.Flags().DurationVar(&duration, "duration", 24*time.Hour, "Token lifetime")
	cmd.MarkFlagRequired("secret")
	cmd.MarkFlagRequired("user")

	return cmd
}

func getJSON(path string) (map[string]any, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	return doJSON(req)
}

func postJSON(path string, payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return doJSON(req)
}

func doJSON(req *http.Request) (map[string]any, error) {
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func printLedger(body map[string]any) {
	fmt.Printf("%-12s %-10s %-28s %12s %12s %12s %12s\n",
		"DATE", "KIND", "DESCRIPTION", "REG +/-", "DEP +/-", "REG BAL", "DEP BAL")

	rows, _ := body["rows"].([]any)
	for _, raw := range rows {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		date, _ := row["date"].(string)
		if len(date) > 10 {
			date = date[:10]
		}

		fmt.Printf("%-12s %-10s %-28s %12v %12v %12v %12v\n",
			date,
			str(row["kind"]),
			truncate(str(row["description"]), 28),
			row["register_change"],
			row["deposit_change"],
			row["register_balance"],
			row["deposit_balance"],
		)
	}

	fmt.Printf("\nOpening: register %v, deposit %v\n", body["starting_register"], body["starting_deposit"])
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
