package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var guildID string

func init() {
	rootCmd.PersistentFlags().StringVar(&guildID, "guild", "", "The guild ID to operate on")
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Dump the raw schedule document for a guild",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/schedule?guildID=" + url.QueryEscape(guildID))
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear every scheduled match for a guild",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/clear?guildID=" + url.QueryEscape(guildID))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
