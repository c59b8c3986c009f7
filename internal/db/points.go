package points

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/davidcortesdev/differentroads-loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// pool abstracts the subset of pgxpool.Pool the storage uses, for tests.
type pool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PointsDB struct {
	pool   pool
	logger *zap.Logger
}

func NewPointsDB(logger *zap.Logger) (db *PointsDB, err error) {
	// config
	purl := os.Getenv("POINTS_DB")
	if purl == "" {
		return nil, fmt.Errorf("env POINTS_DB is not set")
	}
	port := os.Getenv("POINTS_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env POINTS_DB_PORT is not set")
	}
	user := os.Getenv("POINTS_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env POINTS_DB_USER is not set")
	}
	password := os.Getenv("POINTS_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env POINTS_DB_PASSWORD is not set")
	}
	database := os.Getenv("POINTS_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env POINTS_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pgpool, err := pgxpool.New(context.Background(), dsn)
	return &PointsDB{pgpool, logger}, err
}

// Append a ledger entry. Accruals carry a commit date in the future and are
// picked up later by TnxCommitOnDate; reversals come in already committed,
// so their points land on the balance in the same transaction as the insert.
// A committed entry without its balance update must never be visible.
func (p *PointsDB) TnxCreate(ctx context.Context, tnx model.PointsTransaction) (err error) {
	if tnx.UUID == uuid.Nil {
		tnx.UUID = uuid.New()
	}

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	sql, args, err := sq.Insert("tnx").
		Columns("id", "pointaccount", "points", "commitdate", "typetnx", "category", "concept", "reservationid", "reversalof", "commit").
		Values(tnx.UUID, tnx.PointAccount, tnx.Points, tnx.CommitDate, tnx.TypeTnx, tnx.Category, tnx.Concept, tnx.ReservationID, tnx.ReversalOf, tnx.Commit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	if tnx.Commit {
		var currentb int
		row := tx.QueryRow(ctx, "SELECT balance from ACCOUNTS where uuid = $1 FOR UPDATE", tnx.PointAccount)
		err = row.Scan(&currentb)
		if err != nil {
			return err
		}
		currentb += tnx.Points

		sql, args, err = sq.Update("accounts").
			Set("balance", currentb).
			Where(sq.Eq{"uuid": tnx.PointAccount}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Create an account for a traveler
func (p *PointsDB) TravelerCreate(ctx context.Context, travelerId string) (account uuid.UUID, err error) {
	account = uuid.New()

	sql, args, err := sq.Insert("accounts").
		Columns("uuid", "travelerid", "balance").
		PlaceholderFormat(sq.Dollar).
		Values(account, travelerId, 0).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return uuid.Nil, err
	}

	_, err = p.pool.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return uuid.Nil, err
	}
	return account, nil
}

// Move matured accruals onto balances: transactions whose commit date has
// arrived are flagged and their points added to the account, one locked
// transaction per account.
func (p *PointsDB) TnxCommitOnDate(ctx context.Context, date time.Time) error {
	// pending transactions grouped by account
	sql, args, err := sq.Select("pointaccount", "SUM(points) as points").
		From("tnx").
		Where(sq.Eq{"commit": false}).
		Where(sq.LtOrEq{"commitdate": date}).
		GroupBy("pointaccount").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.logger.Error("Query get tnx error", zap.Error(err), zap.String("service", "TnxCommitOnDate"))
		return err
	}
	defer rows.Close()

	var semcount int
	semenv := os.Getenv("POINTS_BALANCE_COUNT")
	if semenv == "" {
		semcount = 3
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 3
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	semch := make(chan struct{}, semcount)
	wg := &sync.WaitGroup{}

	for rows.Next() {
		var account uuid.UUID
		var points int
		if err := rows.Scan(&account, &points); err != nil {
			p.logger.Error("Scan error", zap.Error(err), zap.String("service", "TnxCommitOnDate"))
			continue
		}

		semch <- struct{}{}
		wg.Add(1)
		go func(account uuid.UUID, points int) {
			defer func() {
				wg.Done()
				<-semch
			}()

			tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
			if err != nil {
				p.logger.Error("Begin tx error",
					zap.Error(err),
					zap.String("service", "TnxCommitOnDate"),
					zap.String("account", account.String()))
				return
			}
			var erroroccured bool
			defer func() {
				if erroroccured {
					tx.Rollback(ctx)
				}
			}()

			// lock the balance row
			var currentb int
			row := tx.QueryRow(ctx, "SELECT balance from ACCOUNTS where uuid = $1 FOR UPDATE", account)
			err = row.Scan(&currentb)
			if err != nil {
				p.logger.Error("Block balance error",
					zap.Error(err),
					zap.String("service", "TnxCommitOnDate"),
					zap.String("account", account.String()))
				erroroccured = true
				return
			}

			currentb += points

			sql, args, err := sq.Update("accounts").
				Set("balance", currentb).
				Where(sq.Eq{"uuid": account}).
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if err != nil {
				erroroccured = true
				return
			}
			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				p.logger.Error("Update balance error",
					zap.Error(err),
					zap.String("service", "TnxCommitOnDate"),
					zap.String("account", account.String()))
				erroroccured = true
				return
			}

			sql, args, err = sq.Update("tnx").
				Set("commit", true).
				Where(sq.Eq{"pointaccount": account}).
				Where(sq.Eq{"commit": false}).
				Where(sq.LtOrEq{"commitdate": date}).
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if err != nil {
				erroroccured = true
				return
			}
			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				p.logger.Error("Commit tnx error",
					zap.Error(err),
					zap.String("service", "TnxCommitOnDate"),
					zap.String("account", account.String()))
				erroroccured = true
				return
			}
			err = tx.Commit(ctx)
			if err != nil {
				p.logger.Error("Commit error",
					zap.Error(err),
					zap.String("service", "TnxCommitOnDate"),
					zap.String("account", account.String()))
				erroroccured = true
				return
			}
		}(account, points)
	}
	wg.Wait()
	return nil
}

// Redemption: balance check and decrement plus the REDEEM entry, in one
// transaction with the balance row locked.
func (p *PointsDB) Redeem(ctx context.Context, traveler string, points int, reservationId string) (err error) {
	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	var currentb int
	var account uuid.UUID
	var pguuid pgtype.UUID
	row := tx.QueryRow(ctx, "SELECT uuid, balance from ACCOUNTS where travelerid = $1 FOR UPDATE", traveler)
	err = row.Scan(&pguuid, &currentb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("account %w", model.ErrNotFound)
		}
		return err
	}
	account, _ = uuid.FromBytes(pguuid.Bytes[:])
	if currentb < points {
		return model.ErrInsufficientBalance
	}
	currentb -= points

	sql, args, err := sq.Update("accounts").
		Set("balance", currentb).
		Where(sq.Eq{"travelerid": traveler}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	sql, args, err = sq.Insert("tnx").
		Columns("id", "pointaccount", "points", "commitdate", "typetnx", "category", "concept", "reservationid", "commit").
		Values(uuid.New(), account, points, time.Now(), model.REDEEM, "redemption", "Descuento con puntos", reservationId, true).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Balance of a traveler
func (p *PointsDB) GetBalance(ctx context.Context, traveler string) (points int, err error) {
	row := p.pool.QueryRow(ctx, "SELECT balance FROM accounts WHERE travelerid = $1", traveler)
	err = row.Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("traveler %w", model.ErrNotFound)
		}
		return 0, err
	}
	return points, nil
}

// Committed ledger entries of a traveler for a period
func (p *PointsDB) GetTnx(ctx context.Context, traveler string, from time.Time, to time.Time) (tnxs []model.PointsTransaction, err error) {
	account, err := p.GetTravelerUUID(ctx, traveler)
	if err != nil {
		return nil, err
	}

	sql, args, err := sq.Select("id", "pointaccount", "points", "commitdate", "typetnx", "category", "concept", "reservationid", "reversalof").
		From("tnx").
		Where(sq.Eq{"pointaccount": account}).
		Where(sq.Eq{"commit": true}).
		Where(sq.GtOrEq{"commitdate": from}).
		Where(sq.LtOrEq{"commitdate": to}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transactions %w", model.ErrNotFound)
		}
		return nil, err
	}
	defer rows.Close()

	var tnx model.PointsTransaction
	var category pgtype.Text
	var concept pgtype.Text
	var reservationID pgtype.Text
	var reversalOf pgtype.Text
	for rows.Next() {
		err = rows.Scan(&tnx.UUID, &tnx.PointAccount, &tnx.Points, &tnx.CommitDate, &tnx.TypeTnx, &category, &concept, &reservationID, &reversalOf)
		if err != nil {
			return nil, err
		}
		tnx.TravelerID = traveler
		tnx.Category = category.String
		tnx.Concept = concept.String
		tnx.ReservationID = reservationID.String
		tnx.ReversalOf = reversalOf.String
		tnx.Commit = true
		tnxs = append(tnxs, tnx)
	}
	return tnxs, nil
}

// Sum of redeemed points for a reservation
func (p *PointsDB) GetRedeemedPoints(ctx context.Context, reservationId string) (points int, err error) {
	sql, args, err := sq.Select("COALESCE(SUM(points), 0)").
		From("tnx").
		Where(sq.Eq{"reservationid": reservationId}).
		Where(sq.Eq{"typetnx": model.REDEEM}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}
	row := p.pool.QueryRow(ctx, sql, args...)
	err = row.Scan(&points)
	if err != nil {
		return 0, err
	}
	return points, nil
}

// A reservation is reversed at most once
func (p *PointsDB) HasReversal(ctx context.Context, reservationId string) (bool, error) {
	sql, args, err := sq.Select("COUNT(*)").
		From("tnx").
		Where(sq.Eq{"reversalof": reservationId}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}
	var count int
	row := p.pool.QueryRow(ctx, sql, args...)
	err = row.Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count of committed trip accruals, used for tier membership
func (p *PointsDB) GetTripsCount(ctx context.Context, traveler string) (trips int, err error) {
	account, err := p.GetTravelerUUID(ctx, traveler)
	if err != nil {
		return 0, err
	}

	sql, args, err := sq.Select("COUNT(*)").
		From("tnx").
		Where(sq.Eq{"pointaccount": account}).
		Where(sq.Eq{"typetnx": model.ACCUMULATE}).
		Where(sq.Eq{"category": "trip_completed"}).
		Where(sq.Eq{"commit": true}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}
	row := p.pool.QueryRow(ctx, sql, args...)
	err = row.Scan(&trips)
	if err != nil {
		return 0, err
	}
	return trips, nil
}

// Account UUID of a traveler, created on first use
func (p *PointsDB) GetTravelerUUID(ctx context.Context, traveler string) (account uuid.UUID, err error) {
	row := p.pool.QueryRow(ctx, "SELECT uuid FROM accounts WHERE travelerid = $1", traveler)
	var pguuid pgtype.UUID

	err = row.Scan(&pguuid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			account, err = p.TravelerCreate(ctx, traveler)
			return account, err
		}
		return uuid.Nil, err
	}
	account, _ = uuid.FromBytes(pguuid.Bytes[:])
	return account, nil
}
