package storage

// Key names one top-level entry of the persisted layout. The Store prepends its
// prefix ("taskflow_" by default) to build the backend key.
type Key string

const (
	KeyUsers       Key = "users"
	KeyCurrentUser Key = "current_user"
	KeyProjects    Key = "projects"
	KeyTasks       Key = "tasks"
	KeyTeams       Key = "teams"
	KeyActivities  Key = "activities"
)

// CollectionKeys hold JSON arrays. KeyCurrentUser holds a single object.
var CollectionKeys = []Key{KeyUsers, KeyProjects, KeyTasks, KeyTeams, KeyActivities}

// AllKeys is every key the Store owns.
var AllKeys = []Key{KeyUsers, KeyCurrentUser, KeyProjects, KeyTasks, KeyTeams, KeyActivities}

const DefaultPrefix = "taskflow_"
