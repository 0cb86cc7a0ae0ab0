package repository

import (
    "context"
    "fmt"
    "math/rand"
    "strings"
    "testing"

    "gorm.io/gorm"

    "github.com/d60-Lab/questionsdb/internal/testutil"
)

// seedBench builds users x questions with a random follow/like graph.
func seedBench(b *testing.B, users, questions, links int) *gorm.DB {
    db := testutil.NewDB(b)
    rnd := rand.New(rand.NewSource(42))

    insert := func(prefix string, n int, row func(i int) string) {
        const batch = 500
        for start := 0; start < n; start += batch {
            end := start + batch
            if end > n { end = n }
            vals := make([]string, 0, end-start)
            for i := start; i < end; i++ { vals = append(vals, row(i)) }
            if err := db.Exec(prefix + strings.Join(vals, ",")).Error; err != nil {
                b.Fatalf("seed: %v", err)
            }
        }
    }

    insert("INSERT INTO users (id, fname, lname) VALUES ", users, func(i int) string {
        return fmt.Sprintf("(%d, 'f%d', 'l%d')", i+1, i, i)
    })
    insert("INSERT INTO questions (id, title, body, author_id) VALUES ", questions, func(i int) string {
        return fmt.Sprintf("(%d, 't%d', 'b', %d)", i+1, i, rnd.Intn(users)+1)
    })
    for _, table := range []string{tableFollows, tableLikes} {
        insert("INSERT INTO "+table+" (id, user_id, question_id) VALUES ", links, func(i int) string {
            return fmt.Sprintf("(%d, %d, %d)", i+1, rnd.Intn(users)+1, rnd.Intn(questions)+1)
        })
    }
    return db
}

func BenchmarkJoinQueries(b *testing.B) {
    db := seedBench(b, 2000, 500, 20000)
    repos := NewRepositories(db)
    ctx := context.Background()

    b.ResetTimer()
    b.Run("MostFollowed", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = repos.Follows.MostFollowedQuestions(ctx, 10)
        }
    })

    b.Run("FollowersForQuestion", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = repos.Follows.FollowersForQuestionID(ctx, int64(i%500+1))
        }
    })

    b.Run("FollowedQuestionsForUser", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = repos.Follows.FollowedQuestionsForUserID(ctx, int64(i%2000+1))
        }
    })

    b.Run("NumLikes", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = repos.Likes.NumLikesForQuestionID(ctx, int64(i%500+1))
        }
    })
}
