package socket_io

import (
	"Gamehub/models"
	"Gamehub/services/socket_io/handlers"
	socketio_types "Gamehub/services/socket_io/types"
	"Gamehub/utils"
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
	"go.uber.org/zap"
)

// MySocketServer pushes group changes to the clients watching each day
type MySocketServer struct {
	*socketio_types.SocketServer
	list   handlers.GroupLister
	loc    *time.Location
	logger *zap.Logger
}

func NewServer(loc *time.Location, logger *zap.Logger) *MySocketServer {
	sio := &MySocketServer{
		SocketServer: socketio_types.NewSocketServer(),
		loc:          loc,
		logger:       logger,
	}
	sio.Sio_server = socket.NewServer(nil, nil)
	return sio
}

// Start registers the connection handlers and mounts the server on router
func (sio *MySocketServer) Start(router *gin.Engine, list handlers.GroupLister) {
	sio.list = list

	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		username := handshakeUsername(client)
		if username != "" {
			// one connection per user: a reconnect replaces the old socket
			if previous, ok := sio.GetConnection(username); ok && previous != client {
				previous.Disconnect(true)
			}
			sio.AddConnection(username, client)
		}
		sio.logger.Info("socket connected",
			zap.String("username", username),
			zap.Int("connections", sio.ConnectionCount()))

		client.On("watch_day", handlers.HandleWatchDay(client, list, sio.loc, sio.logger))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(username, client, sio.SocketServer, sio.logger))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	sio.logger.Info("Socket server started")
}

// Close disconnects every client
func (sio *MySocketServer) Close() {
	sio.Sio_server.Close(nil)
}

// GroupsChanged emits, to the room of every day that has groups, the same
// listing a client receives when it starts watching that day
func (sio *MySocketServer) GroupsChanged(groups []models.GameGroup) {
	for day, dayGroups := range sio.DayPayloads(context.Background(), groups) {
		sio.Sio_server.To(handlers.DayRoom(day)).Emit(handlers.GroupsUpdated, gin.H{"date": day, "groups": dayGroups})
	}
}

// DayPayloads lists the groups of each day touched by groups. Nothing is
// listed before Start provides the lister.
func (sio *MySocketServer) DayPayloads(ctx context.Context, groups []models.GameGroup) map[string][]models.GameGroup {
	out := map[string][]models.GameGroup{}
	if sio.list == nil {
		return out
	}
	for _, day := range AffectedDays(groups, sio.loc) {
		date, err := time.ParseInLocation(utils.DateLayout, day, sio.loc)
		if err != nil {
			continue
		}
		out[day] = sio.list(ctx, date)
	}
	return out
}

// AffectedDays returns the calendar days in loc on which groups start, sorted
func AffectedDays(groups []models.GameGroup, loc *time.Location) []string {
	seen := map[string]bool{}
	days := make([]string, 0)
	for _, g := range groups {
		day := utils.FormatDay(g.StartTime.In(loc))
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Strings(days)
	return days
}

// handshakeUsername reads the optional "username" field of the handshake auth
func handshakeUsername(client *socket.Socket) string {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		return ""
	}
	username, _ := authData["username"].(string)
	return username
}
