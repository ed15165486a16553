//go:build wireinject

package chp

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"

	"github.com/soheekimdev/backend-server-effect-sub000/x/account"
	"github.com/soheekimdev/backend-server-effect-sub000/x/auth"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challengeevent"
	"github.com/soheekimdev/backend-server-effect-sub000/x/comment"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/message"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
	"github.com/soheekimdev/backend-server-effect-sub000/x/tag"
)

// Lv0
var jwtServiceProvider = wire.NewSet(jwt.NewService, jwt.NewRepository)
var likeServiceProvider = wire.NewSet(like.NewService, like.NewRepository)
var accountServiceProvider = wire.NewSet(account.NewService, account.NewRepository)
var challengePolicyProvider = wire.NewSet(challenge.NewPolicy, challenge.NewRepository)

// Lv1
var authServiceProvider = wire.NewSet(auth.NewService, account.NewRepository, SetupJwtService)
var postPolicyProvider = wire.NewSet(post.NewPolicy, post.NewRepository, account.NewRepository)
var challengeEventPolicyProvider = wire.NewSet(challengeevent.NewPolicy, challengeevent.NewRepository, SetupChallengePolicy)

// Lv2
var commentPolicyProvider = wire.NewSet(comment.NewPolicy, comment.NewRepository, SetupPostPolicy)
var tagPolicyProvider = wire.NewSet(tag.NewPolicy, SetupPostPolicy, SetupChallengePolicy)

func SetupJwtService(rdb *redis.Client) jwt.Service {
	wire.Build(jwtServiceProvider)
	return nil
}

func SetupAuthService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) auth.Service {
	wire.Build(authServiceProvider)
	return nil
}

func SetupAccountService(db *gorm.DB, mc *memcache.Client, config core.Config) account.Service {
	wire.Build(accountServiceProvider)
	return nil
}

func SetupAccountPolicy(db *gorm.DB, mc *memcache.Client) account.Policy {
	wire.Build(account.NewPolicy, account.NewRepository)
	return account.Policy{}
}

func SetupLikeService(db *gorm.DB, mc *memcache.Client) like.Service {
	wire.Build(likeServiceProvider)
	return nil
}

func SetupPostService(db *gorm.DB, mc *memcache.Client) post.Service {
	wire.Build(post.NewService, post.NewRepository, SetupLikeService)
	return nil
}

func SetupPostPolicy(db *gorm.DB, mc *memcache.Client) post.Policy {
	wire.Build(postPolicyProvider)
	return post.Policy{}
}

func SetupCommentService(db *gorm.DB, mc *memcache.Client) comment.Service {
	wire.Build(comment.NewService, comment.NewRepository, SetupLikeService)
	return nil
}

func SetupCommentPolicy(db *gorm.DB, mc *memcache.Client) comment.Policy {
	wire.Build(commentPolicyProvider)
	return comment.Policy{}
}

func SetupChallengeService(db *gorm.DB, mc *memcache.Client) challenge.Service {
	wire.Build(challenge.NewService, challenge.NewRepository, SetupLikeService)
	return nil
}

func SetupChallengePolicy(db *gorm.DB, mc *memcache.Client) challenge.Policy {
	wire.Build(challengePolicyProvider)
	return challenge.Policy{}
}

func SetupChallengeEventService(db *gorm.DB, mc *memcache.Client) challengeevent.Service {
	wire.Build(challengeevent.NewService, challengeevent.NewRepository)
	return nil
}

func SetupChallengeEventPolicy(db *gorm.DB, mc *memcache.Client) challengeevent.Policy {
	wire.Build(challengeEventPolicyProvider)
	return challengeevent.Policy{}
}

func SetupTagService(db *gorm.DB, mc *memcache.Client) tag.Service {
	wire.Build(tag.NewService, tag.NewRepository)
	return nil
}

func SetupTagPolicy(db *gorm.DB, mc *memcache.Client) tag.Policy {
	wire.Build(tagPolicyProvider)
	return tag.Policy{}
}

func SetupMessageService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) message.Service {
	wire.Build(message.NewService, message.NewRepository)
	return nil
}

func SetupMessagePolicy(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) message.Policy {
	wire.Build(message.NewPolicy, message.NewRepository, account.NewRepository)
	return message.Policy{}
}
