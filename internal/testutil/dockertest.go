package testutil

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/labstack/echo/v4"
	"github.com/ory/dockertest"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

var (
	user        = "postgres"
	password    = "secret"
	dbName      = "unittest"
	dsnTemplate = "postgres://%s:%s@localhost:%s/%s?sslmode=disable"
)

var pool *dockertest.Pool
var poolErr error
var poolLock = &sync.Mutex{}
var dbLock = &sync.Mutex{}

var tracer = otel.Tracer("testutil")

func SetupMockTraceProvider() *tracetest.InMemoryExporter {

	spanChecker := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spanChecker))
	otel.SetTracerProvider(provider)

	return spanChecker
}

// CreateHttpRequest builds an echo context rooted in a fresh test span.
// The returned echo instance has the request validator registered.
func CreateHttpRequest(method, target string, body string) (echo.Context, *http.Request, *httptest.ResponseRecorder, string) {
	e := echo.New()
	e.Validator = util.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	ctx, span := tracer.Start(c.Request().Context(), "testRoot")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))
	traceID := span.SpanContext().TraceID().String()

	return c, req, rec, traceID
}

func PrintSpans(spans tracetest.SpanStubs, traceID string) {
	fmt.Print("--------------------------------\n")

	var found bool = false

	for _, span := range spans {
		if !(span.SpanContext.TraceID().String() == traceID) {
			continue
		}

		found = true

		fmt.Printf("Name: %s\n", span.Name)
		fmt.Printf("TraceID: %s\n", span.SpanContext.TraceID().String())
		fmt.Printf("Attributes:\n")
		for _, attr := range span.Attributes {
			fmt.Printf("  %s: %s: %s\n", attr.Key, attr.Value.Type().String(), attr.Value.Emit())
		}
		fmt.Printf("Events:\n")
		for _, event := range span.Events {
			fmt.Printf("  %s\n", event.Name)
			for _, attr := range event.Attributes {
				fmt.Printf("    %s: %s: %s\n", attr.Key, attr.Value.Type().String(), attr.Value.Emit())
			}
		}
		fmt.Print("--------------------------------\n")
	}

	if !found {
		fmt.Print("Span not found. spans:\n")
		for _, span := range spans {
			fmt.Printf("%s(%s)\n", span.Name, span.SpanContext.TraceID().String())
		}
	}
}

// CreateDB starts a disposable postgres with every table migrated.
// The test is skipped when docker is not reachable.
func CreateDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dbLock.Lock()
	defer dbLock.Unlock()

	pool := getPool(t)

	runOptions := &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + user,
			"POSTGRES_PASSWORD=" + password,
			"POSTGRES_DB=" + dbName,
		},
		ExposedPorts: []string{"5432/tcp"},
	}

	resource, err := pool.RunWithOptions(runOptions)
	if err != nil {
		t.Skipf("could not start postgres: %s", err)
	}
	cleanup := func() {
		closeContainer(pool, resource)
	}

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(dsnTemplate, user, password, port, dbName)
	log.Printf("Postgres running on port %s\n", port)

	var db *gorm.DB
	if err := pool.Retry(func() error {
		time.Sleep(time.Second * 2)

		var err error

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		cleanup()
		t.Fatalf("could not connect to postgres: %s", err)
	}

	err = db.AutoMigrate(
		&core.Account{},
		&core.Post{},
		&core.Comment{},
		&core.Challenge{},
		&core.ChallengeParticipant{},
		&core.ChallengeEvent{},
		&core.ChallengeEventCheck{},
		&core.Like{},
		&core.Tag{},
		&core.TagTarget{},
		&core.Message{},
	)
	if err != nil {
		cleanup()
		t.Fatalf("could not migrate: %s", err)
	}

	return db, cleanup
}

// CreateMC starts a disposable memcached
func CreateMC(t *testing.T) (*memcache.Client, func()) {
	t.Helper()

	pool := getPool(t)

	runOptions := &dockertest.RunOptions{
		Repository:   "memcached",
		Tag:          "1.6.7",
		ExposedPorts: []string{"11211/tcp"},
	}

	resource, err := pool.RunWithOptions(runOptions)
	if err != nil {
		t.Skipf("could not start memcached: %s", err)
	}
	cleanup := func() {
		closeContainer(pool, resource)
	}

	port := resource.GetPort("11211/tcp")
	log.Printf("Memcached running on port %s", port)

	client := memcache.New("localhost:" + port)
	if err := pool.Retry(func() error {
		time.Sleep(time.Second * 1)
		return client.Ping()
	}); err != nil {
		cleanup()
		t.Fatalf("could not connect to memcached: %s", err)
	}

	return client, cleanup
}

func closeContainer(pool *dockertest.Pool, resource *dockertest.Resource) {
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
}

func getPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	poolLock.Lock()
	defer poolLock.Unlock()
	if pool == nil && poolErr == nil {
		pool, poolErr = dockertest.NewPool("")
		if poolErr == nil {
			pool.MaxWait = time.Second * 30
			poolErr = pool.Client.Ping()
		}
	}
	if poolErr != nil {
		t.Skipf("docker unavailable: %s", poolErr)
	}
	return pool
}
