package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	clusterpb "quorumdb/internal/transport/gen/clusterpb"
)

func dial() (*grpc.ClientConn, error) {
	return grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the node's view of the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := clusterpb.NewClientEventServiceClient(conn)
			ctx, cancel := callCtx()
			defer cancel()

			resp, err := client.GetStatus(ctx, &clusterpb.StatusRequest{})
			if err != nil {
				return err
			}

			fmt.Printf("Role:        %s\n", resp.GetRole())
			fmt.Printf("Generation:  %d\n", resp.GetGeneration())
			fmt.Printf("Leader:      %d\n", resp.GetLeaderId())
			fmt.Printf("Healthy:     %d\n", resp.GetHealthyNodeCount())
			fmt.Printf("Quorum size: %d\n", resp.GetQuorumSize())
			fmt.Printf("Has quorum:  %t\n", resp.GetHasQuorum())
			fmt.Printf("Lease valid: %t\n", resp.GetLeaseValid())
			return nil
		},
	}
}

func writeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <payload>",
		Short: "Replicate a payload through the leader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := clusterpb.NewClientEventServiceClient(conn)
			ctx, cancel := callCtx()
			defer cancel()

			requestID := uuid.NewString()
			resp, err := client.Write(ctx, &clusterpb.WriteRequest{
				Payload:   []byte(args[0]),
				RequestId: requestID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Committed (generation %d, request %s)\n", resp.GetGeneration(), requestID)
			return nil
		},
	}
}
