package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/eotc/internal/game"
)

var ErrNotInitialised = errors.New("score: database not initialised")

type DefaultScorer struct {
	db *sql.DB
}

type JudgementsCompact struct {
	Result game.Result
	IDs    []int
}

func compactJudgements(judgements []game.Judgement) []JudgementsCompact {
	resultCount := 0
	for _, j := range judgements {
		if int(j.Result) >= resultCount {
			resultCount = int(j.Result) + 1
		}
	}
	js := make([]JudgementsCompact, resultCount)
	for _, j := range judgements {
		js[j.Result].Result = j.Result // Repeated but it does not matter
		js[j.Result].IDs = append(js[j.Result].IDs, j.ObjectID)
	}
	return js
}

// uncompactJudgements restores judgement order from object ids, which
// follow start time. Judgement times are not kept.
func uncompactJudgements(compact []JudgementsCompact) []game.Judgement {
	js := []game.Judgement{}
	for _, c := range compact {
		for _, id := range c.IDs {
			js = append(js, game.Judgement{ObjectID: id, Result: c.Result})
		}
	}
	sort.SliceStable(js, func(i, j int) bool { return js[i].ObjectID < js[j].ObjectID })
	return js
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists scores 
	  (
		  id text not null primary key, 
		  sum text,
		  rate real,
		  judgements blob,
		  created integer
	  );
	create index if not exists scores_sum on scores(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create score table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultScorer) hashBeatmap(b *game.Beatmap) string {
	sum := sha256.Sum256([]byte(b.Section))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(b *game.Beatmap, judgements []game.Judgement, rate float64) (string, error) {
	if nil == s.db {
		return "", ErrNotInitialised
	}
	data, err := json.Marshal(compactJudgements(judgements))
	if nil != err {
		return "", fmt.Errorf("unable to marshal judgements: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.Exec(
		"insert into scores(id, sum, rate, judgements, created) values(?, ?, ?, ?, ?)",
		id, s.hashBeatmap(b), rate, data, time.Now().UnixNano(),
	)
	if nil != err {
		return "", fmt.Errorf("unable to save score: %w", err)
	}
	return id, nil
}

func (s *DefaultScorer) Load(b *game.Beatmap) ([]History, error) {
	if nil == s.db {
		return nil, ErrNotInitialised
	}
	histories := []History{}
	rows, err := s.db.Query(
		"select id, sum, rate, judgements, created from scores where sum = ? order by created desc, rowid desc",
		s.hashBeatmap(b),
	)
	if nil != err {
		return histories, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var data []byte
		var created int64
		if err := rows.Scan(&h.ID, &h.Sum, &h.Rate, &data, &created); nil != err {
			return histories, fmt.Errorf("unable to scan score: %w", err)
		}
		var compact []JudgementsCompact
		if err := json.Unmarshal(data, &compact); nil != err {
			return histories, fmt.Errorf("unable to unmarshal judgement history %s: %w", h.ID, err)
		}
		h.Created = time.Unix(0, created)
		h.Judgements = uncompactJudgements(compact)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

func (s *DefaultScorer) Score(judgements []game.Judgement) Score {
	var score Score
	var combo uint64
	for _, j := range judgements {
		if j.Result == game.Miss {
			score.MissCount++
			combo = 0
			continue
		}
		score.PerfectCount++
		combo++
		if combo > score.MaxCombo {
			score.MaxCombo = combo
		}
	}
	if total := score.PerfectCount + score.MissCount; total > 0 {
		score.Accuracy = float64(score.PerfectCount) / float64(total)
	}
	return score
}

// Best picks the most accurate of a set of histories.
func (s *DefaultScorer) Best(histories []History) (*History, Score) {
	var best *History
	var bestScore Score
	for i := range histories {
		sc := s.Score(histories[i].Judgements)
		if nil == best || sc.Accuracy > bestScore.Accuracy ||
			(sc.Accuracy == bestScore.Accuracy && sc.MaxCombo > bestScore.MaxCombo) {
			best = &histories[i]
			bestScore = sc
		}
	}
	return best, bestScore
}
