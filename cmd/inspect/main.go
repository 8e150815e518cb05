// Command inspect dumps the message records held in redis as a table.
// Handy for eyeballing what the store actually contains while the
// server is running.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	Colours       bool   `envconfig:"INSPECT_COLOURS" default:"true"`
}

// storedRecord mirrors the JSON body written under record:{id}.
type storedRecord struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Data []byte    `json:"data"`
	Kind string    `json:"kind"`
}

func main() {
	prefix := flag.String("prefix", "record:", "Key prefix to scan")
	flag.Parse()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	if !config.Colours {
		color.Disable()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	defer client.Close()

	ctx := context.Background()
	keys, err := client.Keys(ctx, *prefix+"*").Result()
	if err != nil {
		log.Fatal("Error while scanning keys: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Date", "From", "To", "TTL", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, key := range keys {
		raw, err := client.Get(ctx, key).Bytes()
		if err != nil {
			// A key can expire between KEYS and GET
			fmt.Printf("Error reading key %s: %v\n", key, err)
			continue
		}

		var rec storedRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
			continue
		}

		ttl, _ := client.TTL(ctx, key).Result()

		detail := fmt.Sprintf("%d bytes", len(rec.Data))
		if rec.Kind == "TEXT" {
			detail = string(rec.Data)
			if len(detail) > 40 {
				detail = detail[:40] + "..."
			}
		}

		table.Append([]string{
			key,
			kindLabel(rec.Kind),
			rec.Date.Format("2006-01-02 15:04:05"),
			shortID(rec.From),
			shortID(rec.To),
			ttl.Round(time.Second).String(),
			detail,
		})
	}

	table.Render()
	color.Cyan.Printf("\n%d record(s) under prefix %q\n", len(keys), *prefix)
}

func kindLabel(kind string) string {
	switch kind {
	case "TEXT":
		return color.Green.Sprint(kind)
	case "IMAGE":
		return color.Yellow.Sprint(kind)
	case "AUDIO":
		return color.Magenta.Sprint(kind)
	default:
		return color.Red.Sprint(kind)
	}
}

// shortID keeps the first 8 characters for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
