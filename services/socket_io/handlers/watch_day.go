package handlers

import (
	"Gamehub/models"
	socketio_types "Gamehub/services/socket_io/types"
	"Gamehub/utils"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

// GroupsUpdated is the event carrying a day's groups
const GroupsUpdated = "groups_updated"

// GroupLister returns the groups of a day in every time slot
type GroupLister func(ctx context.Context, day time.Time) []models.GameGroup

// DayRoom is the room of everyone watching day
func DayRoom(day string) socket.Room {
	return socket.Room("day:" + day)
}

// HandleWatchDay joins the client to the room of the requested day and sends
// it the day's current groups. Any room watched before is left.
func HandleWatchDay(client *socket.Socket, list GroupLister, loc *time.Location, logger *zap.Logger) func(args ...interface{}) {
	var watching socket.Room
	return func(args ...interface{}) {
		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "watch_day expects a date"})
			return
		}
		raw, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "watch_day expects a date"})
			return
		}
		day, err := time.ParseInLocation(utils.DateLayout, raw, loc)
		if err != nil {
			client.Emit("error", gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}

		room := DayRoom(raw)
		if watching != "" && watching != room {
			client.Leave(watching)
		}
		client.Join(room)
		watching = room
		logger.Debug("client watching day", zap.String("socket", string(client.Id())), zap.String("day", raw))

		client.Emit(GroupsUpdated, gin.H{"date": raw, "groups": list(context.Background(), day)})
	}
}

// HandleDisconnecting removes the connection from the map
func HandleDisconnecting(username string, client *socket.Socket, sio *socketio_types.SocketServer, logger *zap.Logger) func(args ...interface{}) {
	return func(args ...interface{}) {
		if username != "" {
			sio.RemoveConnection(username, client)
		}
		logger.Debug("client disconnecting", zap.String("username", username))
	}
}
