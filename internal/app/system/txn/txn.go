// internal/app/system/txn/txn.go
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

/*
WithTransaction runs fn inside a multi-document transaction when the
server supports one, and falls back to running fn directly when it does
not (standalone mongod, some hosted tiers). Callers must write fn so it
is safe either way: the operations inside should be individually
idempotent, since the fallback loses all-or-nothing semantics.

A nil log disables the fallback notices.
*/
func WithTransaction(ctx context.Context, client *mongo.Client, log *zap.Logger, fn func(ctx context.Context) error) error {
	if log == nil {
		log = zap.NewNop()
	}

	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			log.Debug("sessions not supported; running without transaction")
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		log.Debug("transactions not supported; running without transaction")
		return fn(ctx)
	}
	return err
}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions (rather than the transaction failing).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		// 20 IllegalOperation, 51 CommandNotSupported, 263 OperationNotSupportedInTransaction
		switch ce.Code {
		case 20, 51, 263:
			return true
		}
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "transaction") && strings.Contains(s, "replica set"):
		return true
	case strings.Contains(s, "session") && strings.Contains(s, "not supported"):
		return true
	case strings.Contains(s, "transaction") && strings.Contains(s, "session"):
		return true
	case strings.Contains(s, "illegal operation"):
		return true
	}
	return false
}
