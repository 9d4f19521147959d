package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/name-picker/internal/errors"
	v1alpha1 "github.com/KirkDiggler/name-picker/internal/handlers/picker/v1alpha1"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort    int
	serveSeed   uint64
	serveEggs   bool
	serveVoice  bool
	serveSpeech bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC server",
	Long:  `Start a headless picker that accepts draws and settings changes over gRPC.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (default $PICKER_GRPC_PORT or 50051)")
	serveCmd.Flags().Uint64Var(&serveSeed, "seed", 0, "fixed seed for a reproducible session")
	serveCmd.Flags().BoolVar(&serveEggs, "eggs", true, "apply egg cases")
	serveCmd.Flags().BoolVar(&serveSpeech, "speech", false, "announce results on this machine")
	serveCmd.Flags().BoolVar(&serveVoice, "voice", true, "speak results when speech is on")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := settings.GRPCPort
	if cmd.Flags().Changed("port") {
		port = grpcPort
	}

	rt, err := buildRuntime(ctx, settings, pickerOptions{
		seed:    serveSeed,
		seeded:  cmd.Flags().Changed("seed"),
		eggs:    serveEggs,
		voice:   serveVoice,
		speaker: serveSpeech,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	srv, err := newGRPCServer(rt.service)
	if err != nil {
		return err
	}
	return serveGRPC(ctx, srv, port)
}

// newGRPCServer registers the picker, health and reflection services
func newGRPCServer(svc picker.Service) (*grpc.Server, error) {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{PickerService: svc})
	if err != nil {
		return nil, err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	v1alpha1.RegisterPickerServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// serveGRPC serves until ctx is done, then stops gracefully
func serveGRPC(ctx context.Context, srv *grpc.Server, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to listen").WithMeta("port", port)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", port)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.WrapWithCode(err, errors.CodeUnavailable, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
