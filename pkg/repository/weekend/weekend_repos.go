package weekend

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/mehmetkahya0/f1-race-prediction/pkg/model"
	"github.com/mehmetkahya0/f1-race-prediction/pkg/repository"
)

//nolint:whitespace // can't make both the linter and editor happy
func Create(
	ctx context.Context,
	conn repository.Querier,
	entry *model.DbRaceWeekend,
) error {
	_, err := conn.Exec(ctx,
		"insert into race_weekend (id, season, track_key, created, data) values ($1,$2,$3,$4,$5)",
		entry.ID, entry.Season, entry.TrackKey, entry.Created, entry.Data)
	return err
}

//nolint:whitespace // can't make both the linter and editor happy
func LoadByID(
	ctx context.Context,
	conn repository.Querier,
	id uuid.UUID,
) (*model.DbRaceWeekend, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where id=$1", selector), id)
	var item model.DbRaceWeekend
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

//nolint:whitespace // can't make both the linter and editor happy
func LoadBySeason(
	ctx context.Context,
	conn repository.Querier,
	season int,
) ([]*model.DbRaceWeekend, error) {
	rows, err := conn.Query(ctx,
		fmt.Sprintf("%s where season=$1 order by created asc", selector), season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.DbRaceWeekend, 0)
	for rows.Next() {
		var item model.DbRaceWeekend
		if err := scan(&item, rows); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// deletes an entry from the database, returns number of rows deleted.
//
//nolint:whitespace // can't make both the linter and editor happy
func DeleteByID(
	ctx context.Context,
	conn repository.Querier,
	id uuid.UUID,
) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from race_weekend where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// little helper
const selector = string(`select id, season, track_key, created, data from race_weekend`)

func scan(e *model.DbRaceWeekend, row pgx.Row) error {
	return row.Scan(&e.ID, &e.Season, &e.TrackKey, &e.Created, &e.Data)
}
