package stories

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/safespacehq/safespace-service/internal/ai"
	"github.com/safespacehq/safespace-service/internal/cache"
	"github.com/safespacehq/safespace-service/internal/events"
	"github.com/safespacehq/safespace-service/internal/narration"
	"github.com/safespacehq/safespace-service/internal/services/submission"
	"github.com/safespacehq/safespace-service/internal/storage"
	"github.com/safespacehq/safespace-service/internal/types"
	"github.com/safespacehq/safespace-service/internal/utils/response"
	"github.com/safespacehq/safespace-service/internal/utils/timeago"
	"github.com/safespacehq/safespace-service/internal/view"
)

// StoryResponse is a story plus its display-ready relative age.
type StoryResponse struct {
	types.Story
	Age string `json:"age"`
}

func toStoryResponse(story types.Story) StoryResponse {
	return StoryResponse{Story: story, Age: timeago.Since(story.CreatedAt)}
}

// Feed handles the stories feed endpoint
// @Summary List stories newest-first, optionally filtered by topic
// @Tags stories
// @Param topic query string false "Topic filter, or All"
// @Router /stories [get]
func Feed(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := types.TopicAll
		if raw := r.URL.Query().Get("topic"); raw != "" {
			topic = types.Topic(raw)
			if topic != types.TopicAll && !topic.Valid() {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("unknown topic")))
				return
			}
		}

		stories := storage.FilterByTopic(store.List(), topic)

		out := make([]StoryResponse, len(stories))
		for i, story := range stories {
			out[i] = toStoryResponse(story)
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Stories fetched successfully", out))
	}
}

// GetStory handles the story detail endpoint
// @Summary Get a single story
// @Tags stories
// @Param id path string true "Story ID"
// @Router /stories/{id} [get]
func GetStory(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID := r.PathValue("id")

		story, ok := store.Get(storyID)
		if !ok {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("story not found")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Story fetched successfully", toStoryResponse(story)))
	}
}

// PostStory handles creating a new story
// @Summary Submit a story anonymously
// @Description Runs the full submit workflow: validation, safety moderation, emotion tagging, publication
// @Tags stories
// @Accept json
// @Produce json
// @Param story body types.StoryPostRequest true "Story content"
// @Success 201 {object} response.Response "Story published"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 422 {object} response.Response "Rejected by moderation"
// @Failure 500 {object} response.Response "Internal server error"
// @Router /stories [post]
func PostStory(svc *submission.Service, router *view.Router, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StoryPostRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("request body cannot be empty")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		if err := validate.Struct(req); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		story, err := svc.Submit(r.Context(), req, func(state submission.State) {
			slog.Debug("submission step", slog.String("state", string(state)))
		})
		if err != nil {
			if rejected, ok := submission.IsRejection(err); ok {
				response.WriteJSON(w, http.StatusUnprocessableEntity, response.GeneralError(rejected))
				return
			}
			if errors.Is(err, submission.ErrContentTooShort) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			slog.Error("submission failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(errors.New("an unexpected error occurred. Please try again")))
			return
		}

		// Land the author on the story they just published.
		router.Navigate(types.StoryView(story.ID))
		publisher.PublishStoryCreated(story)

		slog.Info("Story created with ID:", slog.String("story_id", story.ID))

		response.WriteJSON(w, http.StatusCreated, response.RequestOK("Story published successfully", toStoryResponse(story)))
	}
}

// React handles incrementing a reaction counter
// @Summary React to a story
// @Description Increments exactly one reaction counter by 1
// @Tags stories
// @Param id path string true "Story ID"
// @Param reaction body types.ReactionPostRequest true "Reaction kind"
// @Router /stories/{id}/reactions [post]
func React(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID := r.PathValue("id")

		var req types.ReactionPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid request body")))
			return
		}
		if !req.Kind.Valid() {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("unknown reaction kind")))
			return
		}

		// The store treats an unknown id as a no-op; the HTTP surface still
		// reports it so clients holding stale ids learn the link is dead.
		if !store.IncrementReaction(storyID, req.Kind) {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("story not found")))
			return
		}

		story, _ := store.Get(storyID)
		publisher.PublishStoryReacted(storyID, req.Kind, story.Reactions[req.Kind])

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Reaction recorded successfully", story.Reactions))
	}
}

// Comment handles generating a supportive comment for a story
// @Summary Request an AI-generated supportive comment
// @Tags stories
// @Param id path string true "Story ID"
// @Param tone body types.CommentPostRequest true "Comment tone"
// @Router /stories/{id}/comment [post]
func Comment(store storage.Storage, gateway *ai.Gateway, comments *cache.CommentCache, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID := r.PathValue("id")

		story, ok := store.Get(storyID)
		if !ok {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("story not found")))
			return
		}

		var req types.CommentPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid request body")))
			return
		}
		if !req.Tone.Valid() {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("unknown comment tone")))
			return
		}

		if cached, ok := comments.Get(r.Context(), storyID, req.Tone); ok {
			response.WriteJSON(w, http.StatusOK, response.RequestOK("Comment generated successfully", map[string]string{"comment": cached}))
			return
		}

		outcome := gateway.SupportComment(r.Context(), story.Content, req.Tone)
		if outcome.Source == ai.SourceModel {
			comments.Set(r.Context(), storyID, req.Tone, outcome.Text)
			publisher.PublishCommentGenerated(storyID, req.Tone)
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Comment generated successfully", map[string]string{"comment": outcome.Text}))
	}
}

// Narrate handles starting and stopping story narration
// @Summary Read a story aloud or stop the current narration
// @Tags stories
// @Param id path string true "Story ID"
// @Param action body types.NarrationPostRequest true "start or stop"
// @Router /stories/{id}/narration [post]
func Narrate(store storage.Storage, narrator *narration.Narrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID := r.PathValue("id")

		story, ok := store.Get(storyID)
		if !ok {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("story not found")))
			return
		}

		var req types.NarrationPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid request body")))
			return
		}

		switch req.Action {
		case "start":
			if err := narrator.SpeakStory(story); err != nil {
				response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
				return
			}
		case "stop":
			narrator.Stop()
		default:
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("action must be start or stop")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Narration updated", map[string]bool{"speaking": narrator.Speaking()}))
	}
}
