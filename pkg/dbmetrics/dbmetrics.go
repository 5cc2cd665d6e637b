package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// MetricsCollector интерфейс сборщика метрик БД
type MetricsCollector interface {
	ObserveDBQuery(operation, status string, duration time.Duration)
	SetPoolStats(serviceName string, open, inUse, idle int)
}

// DBExecutor общий интерфейс для выполнения запросов
// Реализуется *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обертка над *sql.DB, собирающая метрики выполнения запросов
type DB struct {
	db          *sql.DB
	collector   MetricsCollector
	serviceName string
}

// Wrap оборачивает *sql.DB сборщиком метрик
func Wrap(db *sql.DB, collector MetricsCollector, serviceName string) *DB {
	return &DB{db: db, collector: collector, serviceName: serviceName}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор статистики connection pool.
// Горутина останавливается при закрытии stopCh.
func WrapWithDefault(db *sql.DB, collector MetricsCollector, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, serviceName)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				collector.SetPoolStats(serviceName, stats.OpenConnections, stats.InUse, stats.Idle)
			}
		}
	}()

	return wrapped
}

// QueryContext выполняет запрос с фиксацией метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки с фиксацией метрик
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// ExecContext выполняет запрос без результата с фиксацией метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// BeginTx начинает транзакцию; запросы внутри нее также попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.collector.ObserveDBQuery(operation, status, time.Since(start))
}

// Tx обертка над *sql.Tx с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe("tx_query", start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe("tx_query_row", start, nil)
	return row
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe("tx_exec", start, err)
	return res, err
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.parent.observe("commit", start, err)
	return err
}

func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.parent.observe("rollback", start, err)
	return err
}
