package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/auth"
	"github.com/SAP-F-2025/course-service/internal/cache"
	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/course-service/internal/testutil"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

type testEnv struct {
	db        *gorm.DB
	deps      deps
	publisher *events.MockEventPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := events.NewMockEventPublisher(logger)

	return &testEnv{
		db: db,
		deps: deps{
			repo:      postgres.NewRepository(db),
			db:        db,
			logger:    logger,
			validator: validator.New(),
			events:    publisher,
		},
		publisher: publisher,
	}
}

func (e *testEnv) withCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	e.deps.cache = cache.NewCacheManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return mr
}

func ptr[T any](v T) *T { return &v }

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func (e *testEnv) signup(t *testing.T, email string, role models.UserRole) *models.User {
	t.Helper()
	user, err := NewAuthService(e.deps, auth.NewJWTManager("secret", "test", time.Hour)).Signup(context.Background(), &SignupRequest{
		Name:     "User " + email,
		Email:    email,
		Password: "pw",
		Role:     &role,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) course(t *testing.T, title string) *models.Course {
	t.Helper()
	course, err := NewCourseService(e.deps).Create(context.Background(), &CreateCourseRequest{
		Title:       title,
		Description: ptr("desc"),
	})
	require.NoError(t, err)
	return course
}

func (e *testEnv) lesson(t *testing.T) (*models.Course, *models.Module, *models.Lesson) {
	t.Helper()
	ctx := context.Background()
	svc := NewCourseService(e.deps)

	course := e.course(t, "Go")
	module, err := svc.CreateModule(ctx, &CreateModuleRequest{Title: "Basics", CourseID: course.ID})
	require.NoError(t, err)
	lesson, err := svc.CreateLesson(ctx, &CreateLessonRequest{Title: "Hello", Content: ptr("x"), ModuleID: module.ID})
	require.NoError(t, err)
	return course, module, lesson
}

// ===== AUTH =====

func TestAuthService_SignupLoginAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAuthService(env.deps, auth.NewJWTManager("secret", "test", time.Hour))

	user, err := svc.Signup(ctx, &SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "pw", user.HashedPassword)
	assert.Len(t, env.publisher.EventsOfType(events.UserRegistered), 1)

	_, err = svc.Signup(ctx, &SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.ErrorIs(t, err, ErrDuplicate)

	token, err := svc.Login(ctx, &LoginRequest{Username: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	got, err := svc.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, &LoginRequest{Username: "ann@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &LoginRequest{Username: "nobody@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_SignupValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.deps, auth.NewJWTManager("secret", "test", time.Hour))

	_, err := svc.Signup(context.Background(), &SignupRequest{Name: "A", Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	bad := models.UserRole("superuser")
	_, err = svc.Signup(context.Background(), &SignupRequest{Name: "A", Email: "a@example.com", Password: "pw", Role: &bad})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAuthService_AuthenticateDeletedUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	jwt := auth.NewJWTManager("secret", "test", time.Hour)

	user := env.signup(t, "gone@example.com", models.RoleStudent)
	token, err := jwt.Issue(user.ID, user.Role)
	require.NoError(t, err)
	require.NoError(t, NewUserService(env.deps).Delete(ctx, user.ID))

	_, err = NewAuthService(env.deps, jwt).Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ===== USERS =====

func TestUserService_Permissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewUserService(env.deps)

	admin := env.signup(t, "admin@example.com", models.RoleAdmin)
	alice := env.signup(t, "alice@example.com", models.RoleStudent)
	bob := env.signup(t, "bob@example.com", models.RoleStudent)

	got, err := svc.GetByID(ctx, alice.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = svc.GetByID(ctx, alice.ID, bob)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID(ctx, 9999, bob)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(ctx, bob.ID, admin)
	assert.NoError(t, err)

	teacher := models.RoleTeacher
	_, err = svc.Update(ctx, alice.ID, &UpdateUserRequest{Role: &teacher}, alice)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, alice.ID, &UpdateUserRequest{Role: &teacher}, admin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, updated.Role)

	_, err = svc.Update(ctx, alice.ID, &UpdateUserRequest{Email: ptr("bob@example.com")}, alice)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_UpdatePasswordRehashes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.signup(t, "alice@example.com", models.RoleStudent)

	updated, err := NewUserService(env.deps).Update(ctx, alice.ID, &UpdateUserRequest{Name: ptr("Alice"), Password: ptr("new")}, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.True(t, auth.VerifyPassword("new", updated.HashedPassword))
	assert.False(t, auth.VerifyPassword("pw", updated.HashedPassword))
}

func TestUserService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewUserService(env.deps)
	alice := env.signup(t, "alice@example.com", models.RoleStudent)

	require.NoError(t, svc.Delete(ctx, alice.ID))
	assert.ErrorIs(t, svc.Delete(ctx, alice.ID), ErrNotFound)
}

// ===== COURSES =====

func TestCourseService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewCourseService(env.deps)

	course := env.course(t, "Go")
	updated, err := svc.Update(ctx, course.ID, &UpdateCourseRequest{Title: ptr("Go 2")})
	require.NoError(t, err)
	assert.Equal(t, "Go 2", updated.Title)
	assert.Equal(t, "desc", updated.Description)

	_, err = svc.Update(ctx, 9999, &UpdateCourseRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	list, err := svc.List(ctx, repositories.Page{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, course.ID))
	_, err = svc.GetByID(ctx, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseService_ModulesAndLessons(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewCourseService(env.deps)

	course, module, lesson := env.lesson(t)

	modules, err := svc.ListModules(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, module.ID, modules[0].ID)

	lessons, err := svc.ListLessons(ctx, module.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, lesson.ID, lessons[0].ID)

	_, err = svc.CreateModule(ctx, &CreateModuleRequest{Title: "x", CourseID: 9999})
	assert.ErrorIs(t, err, ErrCourseNotFound)
	_, err = svc.CreateLesson(ctx, &CreateLessonRequest{Title: "x", Content: ptr("c"), ModuleID: 9999})
	assert.ErrorIs(t, err, ErrModuleNotFound)
	_, err = svc.ListLessons(ctx, 9999)
	assert.ErrorIs(t, err, ErrModuleNotFound)
	_, err = svc.GetLesson(ctx, 9999)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestCourseService_EnrollIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewCourseService(env.deps)

	student := env.signup(t, "s@example.com", models.RoleStudent)
	course := env.course(t, "Go")

	first, err := svc.Enroll(ctx, course.ID, student.ID)
	require.NoError(t, err)
	second, err := svc.Enroll(ctx, course.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, env.db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = svc.Enroll(ctx, 9999, student.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

// ===== ASSESSMENTS =====

func quizRequest() *CreateQuizRequest {
	return &CreateQuizRequest{
		Title: "Quiz 1",
		Questions: []QuestionRequestItem{
			{
				Text:         "2+2?",
				QuestionType: models.QuestionMultipleChoice,
				Points:       ptr(2),
				Options: []validator.QuizOptionRequest{
					{Text: "4", IsCorrect: ptr(true)},
					{Text: "5", IsCorrect: ptr(false)},
				},
			},
			{
				Text:         "Explain goroutines",
				QuestionType: models.QuestionText,
			},
		},
	}
}

func TestAssessmentService_CreateQuizTree(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAssessmentService(env.deps)
	_, module, _ := env.lesson(t)

	quiz, err := svc.CreateQuiz(ctx, module.ID, quizRequest())
	require.NoError(t, err)
	assert.Equal(t, module.ID, quiz.ModuleID)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, 2, quiz.Questions[0].Points)
	assert.Len(t, quiz.Questions[0].Options, 2)
	assert.Equal(t, models.DefaultQuestionPoints, quiz.Questions[1].Points)
	assert.Empty(t, quiz.Questions[1].Options)

	got, err := svc.GetQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	assert.Len(t, got.Questions, 2)

	_, err = svc.CreateQuiz(ctx, 9999, quizRequest())
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

type failingQuizRepo struct {
	repositories.QuizRepository
}

func (failingQuizRepo) CreateOption(context.Context, *gorm.DB, *models.QuizOption) error {
	return errors.New("disk full")
}

type failingRepo struct {
	repositories.Repository
}

func (r failingRepo) Quiz() repositories.QuizRepository {
	return failingQuizRepo{r.Repository.Quiz()}
}

func TestAssessmentService_CreateQuizRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, module, _ := env.lesson(t)

	d := env.deps
	d.repo = failingRepo{env.deps.repo}
	_, err := NewAssessmentService(d).CreateQuiz(ctx, module.ID, quizRequest())
	require.Error(t, err)

	for _, model := range []any{&models.Quiz{}, &models.Question{}, &models.QuizOption{}} {
		var count int64
		require.NoError(t, env.db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestAssessmentService_SubmitAndGrade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAssessmentService(env.deps)

	student := env.signup(t, "s@example.com", models.RoleStudent)
	other := env.signup(t, "o@example.com", models.RoleStudent)
	teacher := env.signup(t, "t@example.com", models.RoleTeacher)
	course := env.course(t, "Go")

	assignment, err := svc.CreateAssignment(ctx, course.ID, &CreateAssignmentRequest{Title: "HW", Description: ptr("do it")})
	require.NoError(t, err)
	assert.Equal(t, course.ID, assignment.CourseID)

	_, err = svc.Submit(ctx, &CreateSubmissionRequest{Content: ptr("x")}, student.ID)
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.Submit(ctx, &CreateSubmissionRequest{AssignmentID: ptr(assignment.ID), QuizID: ptr(uint(1))}, student.ID)
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.Submit(ctx, &CreateSubmissionRequest{AssignmentID: ptr(uint(9999))}, student.ID)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	submission, err := svc.Submit(ctx, &CreateSubmissionRequest{AssignmentID: ptr(assignment.ID), Content: ptr("answer")}, student.ID)
	require.NoError(t, err)
	assert.Nil(t, submission.Score)

	_, err = svc.GetSubmission(ctx, submission.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetSubmission(ctx, submission.ID, teacher)
	assert.NoError(t, err)

	graded, err := svc.Grade(ctx, submission.ID, &GradeRequest{Score: ptr(8.5), Feedback: ptr("good")}, teacher.ID)
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 8.5, *graded.Score)
	assert.Equal(t, "good", *graded.Feedback)
	assert.Len(t, env.publisher.EventsOfType(events.SubmissionGraded), 1)

	_, err = svc.Grade(ctx, 9999, &GradeRequest{Score: ptr(1.0)}, teacher.ID)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
	_, err = svc.Grade(ctx, submission.ID, &GradeRequest{Score: ptr(-1.0)}, teacher.ID)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

// ===== TRACKING =====

func TestTrackingService_ProgressUpsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewTrackingService(env.deps, "https://cert.example.com")

	student := env.signup(t, "s@example.com", models.RoleStudent)
	_, _, lesson := env.lesson(t)

	first, err := svc.UpdateProgress(ctx, student.ID, lesson.ID, &ProgressRequest{Completed: ptr(false)})
	require.NoError(t, err)
	assert.False(t, first.Completed)

	second, err := svc.UpdateProgress(ctx, student.ID, lesson.ID, &ProgressRequest{Completed: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Completed)

	rows, err := svc.ListProgress(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Completed)

	_, err = svc.UpdateProgress(ctx, student.ID, 9999, &ProgressRequest{Completed: ptr(true)})
	assert.ErrorIs(t, err, ErrLessonNotFound)
	_, err = svc.UpdateProgress(ctx, student.ID, lesson.ID, &ProgressRequest{})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestTrackingService_CertificateIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewTrackingService(env.deps, "https://cert.example.com/")

	student := env.signup(t, "s@example.com", models.RoleStudent)
	course := env.course(t, "Go")

	first, err := svc.IssueCertificate(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cert.example.com/"+itoa(student.ID)+"/"+itoa(course.ID), first.CertificateURL)

	second, err := svc.IssueCertificate(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, env.publisher.EventsOfType(events.CertificateIssued), 1)

	list, err := svc.ListCertificates(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.IssueCertificate(ctx, student.ID, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

// ===== COMMUNITY =====

func TestCommunityService_Notifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewCommunityService(env.deps)
	student := env.signup(t, "s@example.com", models.RoleStudent)

	n, err := svc.CreateNotification(ctx, &CreateNotificationRequest{UserID: student.ID, Title: "Hi", Message: ptr("welcome")})
	require.NoError(t, err)
	assert.Equal(t, student.ID, n.UserID)
	assert.Len(t, env.publisher.EventsOfType(events.NotificationCreated), 1)

	list, err := svc.ListNotifications(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.CreateNotification(ctx, &CreateNotificationRequest{UserID: 9999, Title: "Hi", Message: ptr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCommunityService_ForumOrdering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewCommunityService(env.deps)
	student := env.signup(t, "s@example.com", models.RoleStudent)
	course := env.course(t, "Go")

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.PostMessage(ctx, &CreateForumRequest{CourseID: course.ID, Message: msg}, student.ID)
		require.NoError(t, err)
	}

	list, err := svc.ListMessages(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Message)
	assert.Equal(t, "third", list[2].Message)
	assert.Equal(t, student.ID, list[0].UserID)

	_, err = svc.PostMessage(ctx, &CreateForumRequest{CourseID: 9999, Message: "x"}, student.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	_, err = svc.ListMessages(ctx, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

// ===== ADMIN =====

func TestAdminService_RecordPayment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAdminService(env.deps)
	student := env.signup(t, "s@example.com", models.RoleStudent)

	p1, err := svc.RecordPayment(ctx, &PaymentRequest{Amount: ptr(49.99)}, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCurrency, p1.Currency)
	assert.Equal(t, models.PaymentCompleted, p1.Status)
	assert.NotEmpty(t, p1.TransactionID)

	p2, err := svc.RecordPayment(ctx, &PaymentRequest{Amount: ptr(10.0), Currency: "eur"}, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "EUR", p2.Currency)
	assert.NotEqual(t, p1.TransactionID, p2.TransactionID)
	assert.Len(t, env.publisher.EventsOfType(events.PaymentCompleted), 2)

	list, err := svc.ListPayments(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.RecordPayment(ctx, &PaymentRequest{Amount: ptr(0.0)}, student.ID)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAdminService_CountsAreCached(t *testing.T) {
	env := newTestEnv(t)
	mr := env.withCache(t)
	ctx := context.Background()
	svc := NewAdminService(env.deps)

	env.signup(t, "a@example.com", models.RoleStudent)
	n, err := svc.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.True(t, mr.Exists("stats:total_users"))

	// bypass the service so the cache is not invalidated
	require.NoError(t, env.deps.repo.User().Create(ctx, nil, &models.User{Name: "b", Email: "b@example.com", HashedPassword: "x", Role: models.RoleStudent}))
	n, err = svc.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	env.signup(t, "c@example.com", models.RoleStudent)
	assert.False(t, mr.Exists("stats:total_users"))
	n, err = svc.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	env.course(t, "Go")
	courses, err := svc.CountCourses(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, courses)
}

func TestAdminService_CountsWithoutCache(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@example.com", models.RoleStudent)

	n, err := NewAdminService(env.deps).CountUsers(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestAdminService_ExportReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewAdminService(env.deps)

	student := env.signup(t, "s@example.com", models.RoleStudent)
	env.signup(t, "t@example.com", models.RoleTeacher)
	course := env.course(t, "Go")
	_, err := NewCourseService(env.deps).Enroll(ctx, course.ID, student.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportReport(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	users, err := f.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Email", users[0][2])
	assert.Equal(t, "s@example.com", users[1][2])

	courses, err := f.GetRows("Courses")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, []string{itoa(course.ID), "Go", "0", "1"}, courses[1])
}

// ===== SERVICE MANAGER =====

func TestServiceManager_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sm := NewServiceManager(env.db, env.deps.repo, env.deps.logger, env.deps.validator, env.publisher, nil,
		auth.NewJWTManager("secret", "test", time.Hour), ServiceManagerConfig{CertificateBaseURL: "https://cert.example.com"})

	assert.Panics(t, func() { sm.Auth() })
	assert.Error(t, sm.HealthCheck(ctx))

	require.NoError(t, sm.Initialize(ctx))
	require.NoError(t, sm.Initialize(ctx))
	assert.NotNil(t, sm.Course())
	assert.NotNil(t, sm.Admin())
	assert.NoError(t, sm.HealthCheck(ctx))

	require.NoError(t, sm.Shutdown(ctx))
	assert.Error(t, sm.HealthCheck(ctx))
}
