package like

import (
	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

type Entity struct{}

func (Entity) EntityName() string { return "like" }

// Counts is the like/dislike tally of a target
type Counts struct {
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	Mine     string `json:"mine,omitempty"`
}

func validTarget(targetType string) bool {
	switch targetType {
	case core.LikeTargetPost, core.LikeTargetComment, core.LikeTargetChallenge:
		return true
	}
	return false
}

func validType(likeType string) bool {
	return likeType == core.LikeTypeLike || likeType == core.LikeTypeDislike
}

func counterColumn(likeType string) string {
	if likeType == core.LikeTypeDislike {
		return "dislike_count"
	}
	return "like_count"
}

func targetModel(targetType string) any {
	switch targetType {
	case core.LikeTargetComment:
		return &core.Comment{}
	case core.LikeTargetChallenge:
		return &core.Challenge{}
	default:
		return &core.Post{}
	}
}
