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
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catatan-cli",
		Short: "Catatan Keuangan CLI tool",
		Long:  `A command line interface for interacting with the Catatan Keuangan API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Catatan Keuangan API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("CATATAN_TOKEN"), "Session token")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Transaction commands
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	txListCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	}

	var (
		txType        string
		txCategory    string
		txAmount      string
		txDescription string
		txDate        string
		txAccountID   string
	)

	txAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			addTransaction(txType, txCategory, txAmount, txDescription, txDate, txAccountID)
		},
	}
	txAddCmd.Flags().StringVar(&txType, "type", "expense", "Transaction type (income or expense)")
	txAddCmd.Flags().StringVar(&txCategory, "category", "", "Category name")
	txAddCmd.Flags().StringVar(&txAmount, "amount", "", "Amount")
	txAddCmd.Flags().StringVar(&txDescription, "description", "", "Description")
	txAddCmd.Flags().StringVar(&txDate, "date", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD)")
	txAddCmd.Flags().StringVar(&txAccountID, "account", "", "Account id (optional)")

	txRmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteTransaction(args[0])
		},
	}

	txCmd.AddCommand(txListCmd, txAddCmd, txRmCmd)

	// Account commands
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			listAccounts()
		},
	}

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting operations",
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income and expense totals with category breakdowns",
		Run: func(cmd *cobra.Command, args []string) {
			showSummary()
		},
	}

	reportCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(txCmd, accountsCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string, payload any) []byte {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	return respBody
}

func listTransactions() {
	body := doRequest(http.MethodGet, "/api/v1/transactions", nil)

	var result struct {
		Transactions []struct {
			ID          int64  `json:"id"`
			Type        string `json:"type"`
			Category    string `json:"category"`
			Amount      string `json:"amount"`
			Description string `json:"description"`
			Date        string `json:"date"`
			AccountName string `json:"accountName"`
		} `json:"transactions"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, tx := range result.Transactions {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date, tx.Type, tx.Category, tx.Amount, tx.AccountName, tx.Description)
	}
	fmt.Printf("Total: %d\n", result.Total)
}

func addTransaction(txType, category, amount, description, date, accountID string) {
	payload := map[string]string{
		"type":        txType,
		"category":    category,
		"amount":      amount,
		"description": description,
		"date":        date,
	}
	if accountID != "" {
		payload["accountId"] = accountID
	}

	body := doRequest(http.MethodPost, "/api/v1/transactions", payload)

	var result struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded transaction %d\n", result.ID)
}

func deleteTransaction(id string) {
	doRequest(http.MethodDelete, "/api/v1/transactions/"+id, nil)
	fmt.Printf("Deleted transaction %s\n", id)
}

func listAccounts() {
	body := doRequest(http.MethodGet, "/api/v1/accounts", nil)

	var result struct {
		Accounts []struct {
			ID          int64  `json:"id"`
			Name        string `json:"name"`
			Type        string `json:"type"`
			Institution string `json:"institution"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, a := range result.Accounts {
		fmt.Printf("%d\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.Institution)
	}
}

func showSummary() {
	body := doRequest(http.MethodGet, "/api/v1/reports/summary", nil)

	var result struct {
		TotalIncome       string `json:"totalIncome"`
		TotalExpense      string `json:"totalExpense"`
		Balance           string `json:"balance"`
		ExpenseByCategory []struct {
			Name       string `json:"name"`
			Total      string `json:"total"`
			Percentage string `json:"percentage"`
		} `json:"expenseByCategory"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Income:  %s\nExpense: %s\nBalance: %s\n", result.TotalIncome, result.TotalExpense, result.Balance)
	if len(result.ExpenseByCategory) > 0 {
		fmt.Println("Expenses by category:")
		for _, c := range result.ExpenseByCategory {
			fmt.Printf("  %s\t%s\t%s%%\n", c.Name, c.Total, c.Percentage)
		}
	}
}
