// Package errors provides structured errors for the name picker.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. Codes survive wrapping, so a draw failure raised deep in the
// engine still reaches the terminal UI or a gRPC client with its meaning
// intact.
//
// # Basic Usage
//
//	err := errors.ResourceExhausted("no eligible entries").
//	    WithMeta(errors.MetaKind, "personal")
//
//	if err := repo.Append(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record draw")
//	}
//
// # Draw failures
//
// Resolver failures are reported after the draw has already consumed its
// entry. Such errors carry MetaCommitted=true and IsCommitted reports it:
//
//	if errors.IsCommitted(err) {
//	    // the entry stays used even though nothing was shown
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("seed_refresh_minutes", minutes, 1, 1440, vb)
//	errors.ValidateUnique("names", cfg.Names, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The per-field messages are available through ValidationErrors(err).
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err); clients call FromGRPCError to get
// the code and metadata back. Metadata travels as a google.protobuf.Struct
// status detail.
package errors
