package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"
)

type job struct {
	name string
	fn   func()
	spec string
}

var registered []job

// RegisterJob queues a job to be scheduled when Start is called. spec accepts
// standard five-field cron expressions and @every durations.
func RegisterJob(name string, fn func(), spec string) {
	registered = append(registered, job{name: name, fn: fn, spec: spec})
}

func Start() *cron.Cron {
	c := cron.New()

	for _, j := range registered {
		j := j
		_, err := c.AddFunc(j.spec, func() {
			log.Printf("cron job start: %s", j.name)
			j.fn()
			log.Printf("cron job done: %s", j.name)
		})
		if err != nil {
			log.Printf("cron job %s not scheduled: %v", j.name, err)
			continue
		}
	}

	c.Start()
	return c
}
