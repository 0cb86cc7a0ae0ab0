package main

import (
    "context"
    "fmt"
    "math"
    "os"
    "sort"
    "strconv"
    "time"

    "github.com/d60-Lab/questionsdb/config"
    "github.com/d60-Lab/questionsdb/internal/model"
    "github.com/d60-Lab/questionsdb/internal/repository"
    "github.com/d60-Lab/questionsdb/internal/service"
    "github.com/d60-Lab/questionsdb/pkg/database"
    "github.com/d60-Lab/questionsdb/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func envInt(key string, def int) int {
    if s := os.Getenv(key); s != "" {
        if n, err := strconv.Atoi(s); err == nil && n > 0 { return n }
    }
    return def
}

func main() {
    cfg := must(config.Load())
    _ = logger.Init(cfg.Log)
    db := must(database.InitDB(cfg))
    defer func() { _ = database.Close(db) }()

    svc := service.NewServices(repository.NewRepositories(db))
    ctx := context.Background()

    REPEAT := envInt("REPEAT", 200)
    N := envInt("N", 10)
    qid := int64(envInt("QUESTION_ID", 1))
    uid := int64(envInt("USER_ID", 1))

    q := &model.Question{ID: qid}
    u := &model.User{ID: uid}

    type op struct {
        name string
        run  func() error
    }
    ops := []op{
        {fmt.Sprintf("most_followed(%d)", N), func() error { _, err := svc.Questions.MostFollowed(ctx, N); return err }},
        {fmt.Sprintf("most_liked(%d)", N), func() error { _, err := svc.Questions.MostLiked(ctx, N); return err }},
        {"followers", func() error { _, err := svc.Questions.Followers(ctx, q); return err }},
        {"followed_questions", func() error { _, err := svc.Users.FollowedQuestions(ctx, u); return err }},
        {"likers", func() error { _, err := svc.Questions.Likers(ctx, q); return err }},
        {"num_likes", func() error { _, err := svc.Questions.NumLikes(ctx, q); return err }},
    }

    // Percentiles helper
    pct := func(vs []time.Duration, p float64) time.Duration {
        if len(vs) == 0 { return 0 }
        xs := append([]time.Duration(nil), vs...)
        sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
        k := int(math.Ceil(p*float64(len(xs)))) - 1
        if k < 0 { k = 0 }
        if k >= len(xs) { k = len(xs)-1 }
        return xs[k]
    }

    fmt.Printf("driver=%s REPEAT=%d N=%d QUESTION_ID=%d USER_ID=%d\n", cfg.Database.Driver, REPEAT, N, qid, uid)
    for _, o := range ops {
        recs := make([]time.Duration, 0, REPEAT)
        errs := 0
        t0 := time.Now()
        for i := 0; i < REPEAT; i++ {
            st := time.Now()
            if err := o.run(); err != nil { errs++ }
            recs = append(recs, time.Since(st))
        }
        total := time.Since(t0)
        fmt.Printf("%-20s total: %v, per op: %v, p50: %v, p95: %v, p99: %v, errors: %d\n",
            o.name, total, total/time.Duration(REPEAT), pct(recs, 0.50), pct(recs, 0.95), pct(recs, 0.99), errs)
    }
}
