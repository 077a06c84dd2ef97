// Package client provides commands that exercise the dice service over gRPC
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the dice service",
	Long:  `Client commands make real gRPC requests against a running rpg-dpr server.`,
	// the client needs no server-side configuration
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
	ClientCmd.AddCommand(clearRollSessionCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createDiceClient creates a dice service client
func createDiceClient() (apiv1alpha1.DiceServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := apiv1alpha1.NewDiceServiceClient(conn)
	return client, cleanup, nil
}

func printRolls(rolls []*apiv1alpha1.DiceRoll) {
	for i, roll := range rolls {
		fmt.Printf("\nRoll %d:\n", i+1)
		fmt.Printf("  Roll ID: %s\n", roll.RollId)
		fmt.Printf("  Notation: %s\n", roll.Notation)
		fmt.Printf("  Individual Dice: %v\n", roll.Dice)
		if len(roll.Dropped) > 0 {
			fmt.Printf("  Dropped: %v\n", roll.Dropped)
		}
		if roll.Modifier != 0 {
			fmt.Printf("  Dice: %d  Modifier: %+d\n", roll.DiceTotal, roll.Modifier)
		}
		fmt.Printf("  Total: %d\n", roll.Total)
		if roll.Description != "" {
			fmt.Printf("  Description: %s\n", roll.Description)
		}
	}
}
