package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dpr/internal/engine/dice"
	"github.com/KirkDiggler/rpg-dpr/internal/entities/dnd5e"
)

const (
	spellKeyPrefix = "spell:"
	levelIndexKey  = "spells:by_level"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning spell store...")

	iter := client.Scan(ctx, 0, spellKeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var fact dnd5e.SpellFact
		if err := json.Unmarshal([]byte(data), &fact); err != nil {
			fmt.Printf("x Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if fact.Key != strings.TrimPrefix(key, spellKeyPrefix) {
			fmt.Printf("x Key mismatch in %s: document says %q\n", key, fact.Key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// unparseable damage is analyzable (it reports no damage) but worth a look
		if fact.DamageRoll != "" {
			if _, err := dice.Parse(fact.DamageRoll); err != nil {
				fmt.Printf("? Unparseable damage in %s: %q\n", key, fact.DamageRoll)
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	indexed, err := client.ZRange(ctx, levelIndexKey, 0, -1).Result()
	if err != nil {
		log.Fatal("Error reading level index:", err)
	}

	var orphans []string
	for _, spellKey := range indexed {
		n, err := client.Exists(ctx, spellKeyPrefix+spellKey).Result()
		if err != nil {
			fmt.Printf("Error checking %s: %v\n", spellKey, err)
			continue
		}
		if n == 0 {
			orphans = append(orphans, spellKey)
		}
	}

	fmt.Printf("\nChecked %d spells, found %d corrupted entries and %d orphaned index entries\n",
		checkedCount, len(corruptedKeys), len(orphans))

	if len(corruptedKeys) == 0 && len(orphans) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}
	for _, spellKey := range orphans {
		fmt.Printf("  - %s (index only)\n", spellKey)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, levelIndexKey, strings.TrimPrefix(key, spellKeyPrefix))
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	if len(orphans) > 0 {
		members := make([]any, len(orphans))
		for i, k := range orphans {
			members[i] = k
		}
		if err := client.ZRem(ctx, levelIndexKey, members...).Err(); err != nil {
			fmt.Printf("Failed to clean level index: %v\n", err)
		} else {
			fmt.Printf("Removed %d index entries\n", len(orphans))
		}
	}
	fmt.Println("\nCleanup complete!")
}
