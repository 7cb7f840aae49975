// Package report_repository caches rendered schedule workbooks in Redis so
// repeated exports do not rebuild the spreadsheet.
package report_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
)

func workbookKey(userId string) string {
	return "report:schedule:" + userId
}

func SaveWorkbook(redisURL string, userId string, workbook *excelize.File, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	buf := new(bytes.Buffer)
	if err := workbook.Write(buf); err != nil {
		return fmt.Errorf("serializing workbook: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	if err := redisClient.Set(ctx, workbookKey(userId), encoded, expiration).Err(); err != nil {
		return fmt.Errorf("caching workbook: %w", err)
	}

	return nil
}

// FindWorkbook returns the cached workbook bytes, or nil on a cache miss.
func FindWorkbook(redisURL string, userId string) ([]byte, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded, err := redisClient.Get(ctx, workbookKey(userId)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching cached workbook: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding cached workbook: %w", err)
	}

	return raw, nil
}
