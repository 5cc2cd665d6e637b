package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст.
// Репозитории получают ее через GetExecutor и выполняют запросы внутри транзакции.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает executor для выполнения запросов.
// Если в контексте есть активная транзакция - возвращает ее, иначе переданный db.
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return db
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
