package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type speakRequest struct {
	Content string `json:"content"`
	GuildID string `json:"guild_id,omitempty"`
}

type speakResponse struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}

func main() {
	var serverAddr, guildID string
	flag.StringVar(&serverAddr, "server", "http://localhost:8080", "Server address")
	flag.StringVar(&guildID, "guild", "", "ID сервера для разрешения упоминаний")
	flag.Parse()

	// Сообщение берется из аргументов, иначе из stdin
	content := strings.Join(flag.Args(), " ")
	if content == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Не удалось прочитать stdin: %v", err)
		}
		content = strings.TrimRight(string(data), "\r\n")
	}
	if content == "" {
		log.Fatal("Message is required. Usage: client [flags] <message> or pipe it to stdin")
	}

	body, err := json.Marshal(speakRequest{Content: content, GuildID: guildID})
	if err != nil {
		log.Fatalf("Не удалось закодировать запрос: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(serverAddr+"/api/v1/speak", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Не удалось отправить запрос: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Fatalf("Сервер вернул статус: %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var speakResp speakResponse
	if err := json.NewDecoder(resp.Body).Decode(&speakResp); err != nil {
		log.Fatalf("Не удалось декодировать ответ: %v", err)
	}

	log.Printf("Request ID: %s", speakResp.RequestID)
	fmt.Println(speakResp.Text)
}
