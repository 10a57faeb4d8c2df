package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"github.com/orderlens-org/orderlens/engine"
	"github.com/orderlens-org/orderlens/schema"
)

// ============================================================================
// MYSQL STORE — Read-only order source
// ============================================================================
// An alternative ingestion collaborator: the same six-column contract as
// CSV, read from a MySQL/MariaDB table. The store never writes and owns no
// schema — it emits RawOrder tuples for the index builder, which applies the
// same validation regardless of source.
// ============================================================================

// Open connects to MySQL/MariaDB. Accepts mariadb:// and mysql:// URLs as
// well as driver-native DSNs.
func Open(dsn string) (*sql.DB, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// toMySQLDSN converts mariadb:// or mysql:// URLs to the driver's DSN
// format; anything else passes through untouched.
func toMySQLDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, "mariadb://") && !strings.HasPrefix(dsn, "mysql://") {
		return dsn, nil
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	user := ""
	pass := ""
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	host := u.Host
	db := strings.TrimPrefix(u.Path, "/")
	if user == "" || host == "" || db == "" {
		return "", fmt.Errorf("dsn missing user, host or database")
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?interpolateParams=true", user, pass, host, db), nil
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// LoadOrders reads every order row from the named table as raw tuples ready
// for the index builder. The table must carry the contract columns; dates
// and amounts come back as their string forms so the builder validates them
// exactly like CSV input.
func LoadOrders(ctx context.Context, db *sql.DB, table string, logger *logrus.Logger) ([]engine.RawOrder, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(schema.Columns(), ", "), table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []engine.RawOrder
	n := 0
	for rows.Next() {
		n++
		var orderID, customerID, orderDate, productID, quantity, price sql.NullString
		if err := rows.Scan(&orderID, &customerID, &orderDate, &productID, &quantity, &price); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", n, err)
		}
		out = append(out, engine.RawOrder{
			Row:          n,
			OrderID:      orderID.String,
			CustomerID:   customerID.String,
			OrderDate:    orderDate.String,
			ProductID:    productID.String,
			Quantity:     quantity.String,
			PricePerUnit: price.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"table": table,
			"rows":  n,
		}).Info("orders loaded")
	}
	return out, nil
}
