// Package main provides a small command-line probe for a running rpg-dpr server
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "rpg-dpr-client",
	Short: "Probe an rpg-dpr server",
}

var healthCmd = &cobra.Command{
	Use:   "health [service]",
	Short: "Check server health, optionally for one service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		service := ""
		if len(args) == 1 {
			service = args[0]
		}

		return withConn(func(ctx context.Context, conn *grpc.ClientConn) error {
			resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
				Service: service,
			})
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Println(resp.GetStatus().String())
			return nil
		})
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll [entity-id] [context] [notation]",
	Short: "Roll dice and print the raw response",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		return withConn(func(ctx context.Context, conn *grpc.ClientConn) error {
			resp, err := apiv1alpha1.NewDiceServiceClient(conn).RollDice(ctx, &apiv1alpha1.RollDiceRequest{
				EntityId: args[0],
				Context:  args[1],
				Notation: args[2],
			})
			if err != nil {
				return fmt.Errorf("failed to roll dice: %w", err)
			}

			output, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal response: %w", err)
			}

			fmt.Println(string(output))
			return nil
		})
	},
}

func withConn(fn func(context.Context, *grpc.ClientConn) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	return fn(ctx, conn)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(rollCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
