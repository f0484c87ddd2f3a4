package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/eduhub/apps/api/echo"
	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assistant"
	"github.com/trezcool/eduhub/core/notification"
	"github.com/trezcool/eduhub/core/pomodoro"
	"github.com/trezcool/eduhub/core/student"
	emailsvc "github.com/trezcool/eduhub/services/email"
	notifysvc "github.com/trezcool/eduhub/services/notifier"
	dummydb "github.com/trezcool/eduhub/storage/database/dummy"
	testutil "github.com/trezcool/eduhub/tests"
)

type httpErr struct {
	Error string `json:"error"`
}

// stubAIClient stands in for the remote model; tests flip its knobs.
type stubAIClient struct {
	healthy  bool
	response string
	err      error
}

func (c *stubAIClient) SendMessage(ctx context.Context, message string, chatCtx interface{}) (string, error) {
	return c.response, c.err
}

func (c *stubAIClient) CheckHealth(ctx context.Context) bool { return c.healthy }

type env struct {
	app      *Server
	conf     *core.Config
	aiClient *stubAIClient
	session  *assistant.Session
}

func setup(t *testing.T) *env {
	t.Helper()

	conf := testutil.NewConfig()
	conf.Debug = false
	conf.AI.Enabled = true
	logger := testutil.NewLogger()

	db, err := dummydb.OpenSeeded()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	// no bound worker port; sends fall back to the direct shower
	gateway := notification.NewGateway(
		notifysvc.NewConsoleShowerMock(),
		notification.NewPortRegistration(8),
		notifysvc.NewConfigPrompter(conf),
		conf,
		logger,
	)

	stuSvc := student.NewService(dummydb.NewStudentRepository(db), mailSvc, gateway, logger)

	aiClient := &stubAIClient{healthy: true}
	session := assistant.NewSession(aiClient, logger)
	session.CheckHealth(context.Background())

	timer := pomodoro.NewTimer(pomodoro.Settings{}, gateway, logger)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	app := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     logger,
		StudentSvc: stuSvc,
		Session:    session,
		Timer:      timer,
		Gateway:    gateway,
		Validate:   validate,
		Translator: translator,
	})
	return &env{app: app, conf: conf, aiClient: aiClient, session: session}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarchallObj(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarchallObj() failed: %v\nbody: %s", err, rec.Body.String())
	}
}
