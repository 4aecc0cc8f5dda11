package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

const (
	homeClassLimit = 3
	homePostLimit  = 3
	noClass        = "No Class"
)

type ContentService interface {
	Home(ctx context.Context) (*response_models.HomeResponse, error)
	Team(ctx context.Context) ([]response_models.TeamMemberResponse, error)
	Posts(ctx context.Context) ([]response_models.BlogPostResponse, error)
	Post(ctx context.Context, id uuid.UUID) (*response_models.BlogPostResponse, error)
	Classes(ctx context.Context) ([]response_models.GymClassResponse, error)
	Timetable(ctx context.Context) (*response_models.TimetableResponse, error)

	SubscribeNewsletter(ctx context.Context, request request_models.NewsletterRequest) error
	SubmitContact(ctx context.Context, request request_models.ContactRequest) error
	ReplyToContact(ctx context.Context, id uuid.UUID, request request_models.ContactReplyRequest) error
}

type contentService struct {
	contentRepo repositories.ContentRepository
	classRepo   repositories.GymClassRepository
	catalog     CatalogService
	plans       PlanServiceInterface
	mail        IMailService
	publisher   queue.Publisher
	now         func() time.Time
}

func NewContentService(
	contentRepo repositories.ContentRepository,
	classRepo repositories.GymClassRepository,
	catalog CatalogService,
	plans PlanServiceInterface,
	mail IMailService,
	publisher queue.Publisher,
) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		classRepo:   classRepo,
		catalog:     catalog,
		plans:       plans,
		mail:        mail,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *contentService) Home(ctx context.Context) (*response_models.HomeResponse, error) {
	classes, err := s.classRepo.ListClasses(ctx, homeClassLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	products, err := s.catalog.TopRated(ctx, topRatedLimit)
	if err != nil {
		return nil, err
	}
	team, err := s.Team(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.GetPlans(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.contentRepo.ListPosts(ctx, homePostLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	home := &response_models.HomeResponse{
		Classes:  make([]response_models.GymClassResponse, 0, len(classes)),
		Products: products,
		Team:     team,
		Plans:    plans,
		Posts:    make([]response_models.BlogPostResponse, 0, len(posts)),
	}
	for i := range classes {
		home.Classes = append(home.Classes, toClassResponse(&classes[i]))
	}
	for i := range posts {
		home.Posts = append(home.Posts, toPostResponse(&posts[i], false))
	}
	return home, nil
}

func (s *contentService) Team(ctx context.Context) ([]response_models.TeamMemberResponse, error) {
	members, err := s.contentRepo.ListTeam(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.TeamMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, toTeamResponse(&members[i]))
	}
	return out, nil
}

func (s *contentService) Posts(ctx context.Context) ([]response_models.BlogPostResponse, error) {
	posts, err := s.contentRepo.ListPosts(ctx, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.BlogPostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i], false))
	}
	return out, nil
}

func (s *contentService) Post(ctx context.Context, id uuid.UUID) (*response_models.BlogPostResponse, error) {
	post, err := s.contentRepo.FindPost(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	resp := toPostResponse(post, true)
	return &resp, nil
}

func (s *contentService) Classes(ctx context.Context) ([]response_models.GymClassResponse, error) {
	classes, err := s.classRepo.ListClasses(ctx, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.GymClassResponse, 0, len(classes))
	for i := range classes {
		out = append(out, toClassResponse(&classes[i]))
	}
	return out, nil
}

// Timetable lays schedules out as time rows by weekday columns.
func (s *contentService) Timetable(ctx context.Context) (*response_models.TimetableResponse, error) {
	schedules, err := s.classRepo.ListSchedules(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	grid := make(map[string]map[string]string, len(db_models.ScheduleTimes))
	for _, t := range db_models.ScheduleTimes {
		row := make(map[string]string, len(db_models.ScheduleDays))
		for _, d := range db_models.ScheduleDays {
			row[d] = noClass
		}
		grid[t] = row
	}
	for _, sc := range schedules {
		row, ok := grid[sc.Time]
		if !ok || sc.GymClass == nil {
			continue
		}
		if _, ok := row[sc.Day]; ok {
			row[sc.Day] = sc.GymClass.Name
		}
	}

	resp := &response_models.TimetableResponse{
		Days: db_models.ScheduleDays,
		Rows: make([]response_models.TimetableRow, 0, len(db_models.ScheduleTimes)),
	}
	for _, t := range db_models.ScheduleTimes {
		resp.Rows = append(resp.Rows, response_models.TimetableRow{Time: t, Classes: grid[t]})
	}
	return resp, nil
}

func (s *contentService) SubscribeNewsletter(ctx context.Context, request request_models.NewsletterRequest) error {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	exists, err := s.contentRepo.NewsletterExists(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if exists {
		return utils.ErrNewsletterExists
	}

	if err := s.contentRepo.CreateNewsletter(ctx, &db_models.Newsletter{Email: email}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrNewsletterExists
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *contentService) SubmitContact(ctx context.Context, request request_models.ContactRequest) error {
	msg := &db_models.ContactMessage{
		Name:    strings.TrimSpace(request.Name),
		Email:   strings.TrimSpace(request.Email),
		Message: strings.TrimSpace(request.Message),
	}
	if err := s.contentRepo.CreateContactMessage(ctx, msg); err != nil {
		return utils.ErrDatabaseError
	}

	publishEvent(ctx, s.publisher, queue.NewEvent(
		queue.EventContactReceived, "", msg.ID.String(),
		fmt.Sprintf("New contact message from %s", msg.Name),
		map[string]any{"email": msg.Email},
	))
	return nil
}

func (s *contentService) ReplyToContact(ctx context.Context, id uuid.UUID, request request_models.ContactReplyRequest) error {
	msg, err := s.contentRepo.FindContactMessage(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if msg == nil {
		return utils.ErrContactMessageNotFound
	}
	if s.mail == nil {
		return utils.ErrMailUnavailable
	}

	if err := s.mail.SendContactReply(msg.Email, msg.Name, request.Subject, request.Message); err != nil {
		log.Printf("Failed to send contact reply to %s: %v", msg.Email, err)
		return utils.ErrMailUnavailable
	}
	if err := s.contentRepo.MarkReplied(ctx, id, s.now().Unix()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
