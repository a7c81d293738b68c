package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kashee337/solve_digest/config"
	"github.com/kashee337/solve_digest/controller"
	"github.com/kashee337/solve_digest/logger"
	"github.com/kashee337/solve_digest/model"
	"github.com/kashee337/solve_digest/sender"
)

func main() {

	//read config
	conf_path, err := config.ToAbsPath("conf.yaml")
	if err != nil {
		log.Fatalln(err)
	}
	conf, err := config.ReadConf(conf_path)
	if err != nil {
		log.Fatalln(err)
	}
	offset, err := conf.Offset()
	if err != nil {
		log.Fatalln(err)
	}
	pause, err := conf.Pause()
	if err != nil {
		log.Fatalln(err)
	}

	sink := logger.NewStdSink()
	now := time.Now()
	window := controller.NewWindow(now, offset)

	//collect today's submissions from both judges
	lc := controller.LeetcodeClient{Url: conf.LeetcodeUrl, User: conf.LeetcodeUser, Log: sink}
	cf := controller.CodeforcesClient{Url: conf.CodeforcesUrl, Handle: conf.CodeforcesHandle, Log: sink}
	digest := controller.CollectToday(controller.Expansion{
		Window: window,
		Start:  conf.InitialLimit,
		Step:   conf.LimitStep,
		Pause:  pause,
		Log:    sink,
	}, lc, cf)

	//render and write the page
	local := window.In(now)
	doc, err := sender.Render(digest, local, conf.Layout)
	if err != nil {
		sink.Error("%v", err)
		return
	}
	path := sender.WriteMarkdown(conf.OutputDir, local, doc, sink)

	if conf.DbPath != "" {
		archiveDigest(conf.DbPath, digest, window.Day(), sink)
	}

	//send to slack!
	if conf.WebhookUrl != "" && path != "" {
		sender.Notify(nil, conf.WebhookUrl, fmt.Sprintf("%s: %d submissions today (%s)", sender.DateString(local), digest.Total(), path), sink)
	}
	sink.Info("finish")
}

func archiveDigest(ref_path string, digest model.Digest, day string, sink logger.Sink) {
	db_path, err := config.ToAbsPath(ref_path)
	if err != nil {
		sink.Error("archive: %v", err)
		return
	}
	archive, err := controller.OpenArchive(db_path)
	if err != nil {
		sink.Error("archive: %v", err)
		return
	}
	defer archive.Close()

	created, err := archive.Save(digest, day)
	if err != nil {
		sink.Error("archive: %v", err)
		return
	}
	sink.Info("archive: %d new submissions stored under run %s", created, archive.RunId())
}
