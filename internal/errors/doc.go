// Package errors provides coded errors for rpg-dpr.
//
// Every layer outside the pure calculation packages returns *Error values so
// that the gRPC handlers and the CLI can decide how to present a failure
// without string matching.
//
// # Basic Usage
//
//	err := errors.NotFoundf("spell %s not found", key)
//	err := errors.InvalidArgumentf("target AC must be positive, got %d", ac)
//
// Wrapping keeps the original code:
//
//	if err := repo.Put(ctx, fact); err != nil {
//	    return errors.Wrapf(err, "failed to store spell %s", fact.Key)
//	}
//
// Metadata travels with the error:
//
//	return errors.InvalidArgument("unparseable damage roll").
//	    WithMeta("spell", fact.Key).
//	    WithMeta("damage", fact.Damage)
//
// # Validation
//
// Config and input structs collect field problems with a builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("key", in.Key, vb)
//	errors.ValidateRange("slot_level", in.SlotLevel, 1, 9, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers convert at the boundary:
//
//	return nil, errors.ToGRPCError(err)
package errors
