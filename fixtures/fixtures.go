// Package fixtures holds the seed data loaded on first start.
package fixtures

import (
	"companion-lab/domain"
	"slices"
)

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

var (
	Zhang = domain.UserProfile{ID: "u1", Name: "老张", Gender: domain.Male, Avatar: avatarBase + "Felix"}
	Wang  = domain.UserProfile{ID: "o1", Name: "王姨", Gender: domain.Female, Avatar: avatarBase + "Aneka"}
	Li    = domain.UserProfile{ID: "o2", Name: "李哥", Gender: domain.Male, Avatar: avatarBase + "Jack"}
	Chen  = domain.UserProfile{ID: "o3", Name: "陈姐", Gender: domain.Female, Avatar: avatarBase + "Cathy"}
	Zhao  = domain.UserProfile{ID: "u88", Name: "赵四", Gender: domain.Male, Avatar: avatarBase + "Zack"}
	Liu   = domain.UserProfile{ID: "u89", Name: "刘能", Gender: domain.Male, Avatar: avatarBase + "Liu"}
	Xiao  = domain.UserProfile{ID: "u99", Name: "小李", Gender: domain.Male, Avatar: avatarBase + "Leo"}
)

// LoginUser is the account signed in by the login flow.
func LoginUser() domain.UserProfile {
	return Zhang
}

// Users are the known profiles, login candidates included.
func Users() []domain.UserProfile {
	return []domain.UserProfile{Zhang, Wang, Li, Chen, Zhao, Liu, Xiao}
}

func comment(id string, author domain.UserProfile, content, timestamp string) domain.Message {
	return domain.Message{
		ID:           id,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Content:      content,
		Timestamp:    timestamp,
	}
}

func reply(id string, author, to domain.UserProfile, content, timestamp string) domain.Message {
	m := comment(id, author, content, timestamp)
	m.ReplyToID = to.ID
	return m
}

// Consultation is the threaded sample used by the hiking event:
// two counterparts, one of them answered twice.
func Consultation() []domain.Message {
	return []domain.Message{
		comment("c1", Li, "请问具体几点集合？我们这边离得有点远。", "10分钟前"),
		reply("c1_reply", Chen, Li, "下午两点准时开始。", "8分钟前"),
		comment("c1_2", Li, "另外，那边好停车吗？", "5分钟前"),
		reply("c1_reply2", Chen, Li, "门口就有免费停车位，车位很足，放心来。", "3分钟前"),
		comment("c2", Zhao, "需要带什么装备吗？", "1小时前"),
	}
}

func Events() []domain.TripEvent {
	return []domain.TripEvent{
		{
			ID:          "e1",
			Title:       "周三下午麻将局，三缺一！",
			Description: "小区老年活动中心，带彩头的别来，纯娱乐。最好是打得快的，我们都比较熟练。",
			Destination: "烟台·阳光花园活动中心",
			Date:        "本周三 14:00",
			Tags:        []string{"棋牌"},
			AgeRange:    "退休人员",
			GenderReq:   "不限",
			Organizer:   Wang,
			Capacity:    4,
			Enrolled:    3,
			Status:      domain.Recruiting,
		},
		{
			ID:          "e2",
			Title:       "周末百望山爬山，锻炼身体",
			Description: "不用走太远，带点水果干粮，中午野餐。欢迎喜欢摄影的朋友，我也带相机。",
			Destination: "北京·百望山森林公园",
			Date:        "周六 09:00",
			Tags:        []string{"运动"},
			AgeRange:    "不限",
			GenderReq:   "不限",
			Organizer:   Chen,
			Capacity:    6,
			Enrolled:    6,
			Status:      domain.Full,
			Comments:    Consultation(),
			Applicants: []domain.Applicant{
				{UserID: Zhang.ID, UserName: Zhang.Name, UserAvatar: Zhang.Avatar, UserGender: Zhang.Gender, Status: domain.Approved, ApplyTime: "昨天", Intro: "我体力还行，经常爬香山。"},
			},
			GroupChatID: domain.GroupChatID("e2"),
		},
		{
			ID:          "e6",
			Title:       "【发起人视角】周末钓鱼局",
			Description: "我开车，去密云水库。现有2人，再找2个。费用AA。",
			Destination: "北京·密云水库",
			Date:        "周六 05:00",
			Tags:        []string{"运动", "其他"},
			AgeRange:    "不限",
			GenderReq:   "限男性",
			Organizer:   Zhang,
			Capacity:    4,
			Enrolled:    2,
			Status:      domain.Recruiting,
			Comments: []domain.Message{
				comment("c10", Xiao, "能蹭车吗？我可以分摊油费。", "5分钟前"),
			},
			Applicants: []domain.Applicant{
				{UserID: Zhao.ID, UserName: Zhao.Name, UserAvatar: Zhao.Avatar, UserGender: Zhao.Gender, Status: domain.Pending, ApplyTime: "10分钟前", Intro: "老钓友了，装备齐全，性格随和。"},
				{UserID: Liu.ID, UserName: Liu.Name, UserAvatar: Liu.Avatar, UserGender: Liu.Gender, Status: domain.Approved, ApplyTime: "1小时前", Intro: "没怎么钓过，想去学学，负责拎包。"},
			},
		},
	}
}

const unsplash = "https://images.unsplash.com/photo-"

func image(id string) string {
	return unsplash + id + "?w=800&auto=format&fit=crop&q=60"
}

func Posts() []domain.Post {
	return []domain.Post{
		{
			ID:                "p1",
			Author:            domain.UserProfile{ID: "m1", Name: "快乐外婆", Gender: domain.Female, Avatar: avatarBase + "Granny"},
			Images:            []string{image("1527668752968-14a708d18486"), image("1523906834658-6e24ef2386f9")},
			Content:           "上次跟王老师他们去的苏州太好了！虽然下雨，但是喝茶听曲儿别有一番风味。大家看看这环境，是不是很有感觉？",
			Likes:             156,
			Comments:          12,
			RelatedEventTitle: "苏州评弹文化之旅",
			RelatedEventID:    "e99",
			ChallengeActive:   true,
		},
		{
			ID:                "p2",
			Author:            domain.UserProfile{ID: "m2", Name: "强哥", Gender: domain.Male, Avatar: avatarBase + "John"},
			Images:            []string{image("1623696144896-1c7c91728131")},
			Content:           "今天的麻将局打得太开心了，虽然没赢，但是认识了几个新邻居。下次争取自摸！",
			Likes:             89,
			Comments:          5,
			RelatedEventTitle: "周五社区麻将",
			RelatedEventID:    "e98",
			ChallengeActive:   true,
		},
		{
			ID:                "p3",
			Author:            domain.UserProfile{ID: "m3", Name: "刘摄", Gender: domain.Male, Avatar: avatarBase + "Bob"},
			Images:            []string{image("1472214103451-9374bd1c798e"), image("1506744038136-46273834b3fb"), image("1501785888041-af3ef285b470")},
			Content:           "密云水库的早晨，空气太好了。感谢队长组织，这次拍到了满意的日出。",
			Likes:             42,
			Comments:          8,
			RelatedEventTitle: "密云水库摄影团",
			RelatedEventID:    "e6",
			ChallengeActive:   true,
		},
		{
			ID:                "p4",
			Author:            domain.UserProfile{ID: "m4", Name: "赵姐", Gender: domain.Female, Avatar: avatarBase + "Sara"},
			Images:            []string{image("1551632811-561732d1e306")},
			Content:           "爬完山大家一起聚餐，AA制很划算，味道也不错。推荐这家的鱼头泡饼。",
			Likes:             35,
			Comments:          2,
			RelatedEventTitle: "百望山登山小队",
			RelatedEventID:    "e2",
			ChallengeActive:   true,
		},
		{
			ID:                "p5",
			Author:            domain.UserProfile{ID: "m5", Name: "王叔", Gender: domain.Male, Avatar: avatarBase + "Felix"},
			Images:            []string{image("1529156069898-49953e39b3ac")},
			Content:           "老哥几个好久没聚了，今天喝得有点多，哈哈。",
			Likes:             12,
			RelatedEventTitle: "老战友聚会",
			RelatedEventID:    "e100",
			ChallengeActive:   true,
		},
	}
}

func Chats() []domain.ChatSession {
	return []domain.ChatSession{
		{
			ID:          domain.GroupChatID("e2"),
			EventID:     "e2",
			Title:       "周末百望山爬山小分队",
			Avatar:      Chen.Avatar,
			LastMessage: "陈姐: 大家都记得带水啊！",
			LastTime:    "10:30",
			Unread:      2,
		},
	}
}

func ChatMessages() map[string][]domain.ChatMessage {
	chatID := domain.GroupChatID("e2")
	return map[string][]domain.ChatMessage{
		chatID: {
			{ID: "m1", ChatID: chatID, SenderID: Chen.ID, SenderName: Chen.Name, SenderAvatar: Chen.Avatar, Content: "欢迎大家加入！", Time: "10:00"},
			{ID: "m2", ChatID: chatID, SenderID: Chen.ID, SenderName: Chen.Name, SenderAvatar: Chen.Avatar, Content: "大家都记得带水啊！", Time: "10:30"},
		},
	}
}

func Champions() []domain.Champion {
	return []domain.Champion{
		{
			ID:          "h1",
			Month:       "2023年9月",
			Winner:      domain.UserProfile{ID: "w1", Name: "摄影小刘", Gender: domain.Male, Avatar: avatarBase + "Bob"},
			Likes:       128,
			PostImages:  []string{image("1472214103451-9374bd1c798e")},
			PostContent: "密云水库的日出，真的太美了！感谢大家的支持！",
		},
		{
			ID:          "h2",
			Month:       "2023年8月",
			Winner:      domain.UserProfile{ID: "w2", Name: "赵阿姨", Gender: domain.Female, Avatar: avatarBase + "Sara"},
			Likes:       105,
			PostImages:  []string{image("1516483638261-f4dbaf036963")},
			PostContent: "带着孙子去草原天路，一路欢声笑语。",
		},
	}
}

// Notifications are the inbox of the login user, oldest first.
func Notifications() []domain.Notification {
	notifications := []domain.Notification{
		{
			ID: "n1", RecipientID: Zhang.ID, Type: domain.CommentNotification,
			Title: "收到新留言", Content: "“请问钓鱼这个活动需要自己准备鱼竿吗？”", Time: "10分钟前",
			RelatedEventID: "e6", FromUser: &domain.Display{Name: Xiao.Name, Avatar: Xiao.Avatar},
		},
		{
			ID: "n2", RecipientID: Zhang.ID, Type: domain.ApplicationReceivedNotification,
			Title: "收到报名申请", Content: "“王大伯申请加入您的‘周三下午麻将局’”", Time: "1小时前",
			RelatedEventID: "e1", FromUser: &domain.Display{Name: "王大伯", Avatar: avatarBase + "Jack"},
		},
		{
			ID: "n3", RecipientID: Zhang.ID, Type: domain.ApplicationResultNotification,
			Title: "申请结果通知", Content: "“恭喜！您申请加入‘周末百望山爬山’已通过。”", Time: "2小时前",
			Read: true, RelatedEventID: "e2",
		},
		{
			ID: "n4", RecipientID: Zhang.ID, Type: domain.TeamInteractionNotification,
			Title: "队友互动", Content: "“您的队友点赞了您的精彩瞬间，快去看看吧！”", Time: "昨天",
			RelatedPostID: "p3",
		},
	}
	slices.Reverse(notifications)
	return notifications
}
