package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"roomly_server/routes"
	"roomly_server/services"
	"roomly_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	listingService := &services.ListingService{Dynamo: dynamoService}
	decisionService := &services.DecisionService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService, Profiles: userProfileService}
	messageService := &services.MessageService{Dynamo: dynamoService}
	chatService := &services.ChatService{Log: messageService}
	imageService := services.NewImageService()

	swipeService := &services.SwipeService{
		Profiles:  userProfileService,
		Listings:  listingService,
		Decisions: decisionService,
		Matches:   matchService,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Roomly")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterListingRoutes(r, listingService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterImageRoutes(r, imageService)

	// Live chat over Socket.IO
	socketServer := socket.NewSocketServer(chatService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
