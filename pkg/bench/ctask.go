package bench

import (
	"runtime"

	"go.uber.org/zap"

	"qmark/pkg/protocol"
)

// ctask is the micro client. It seeds one message to server id mod
// numQTasks, then relays it round-robin through the remaining servers, one
// hop per received message, appending its own id each time. After
// numQTasks total sends every server has been visited exactly once and the
// client terminates without reading the last forward.
func (b *Bench) ctask(ctid int) error {
	self := protocol.NewID(protocol.KindCTask, ctid).String()
	target := protocol.NewID(protocol.KindClientQ, ctid).String()
	inbox := b.ctaskQueues[ctid]

	dst := ctid % b.numQTasks
	seed := protocol.Message{Command: protocol.CmdQueue, Target: target, Path: []string{self}}
	b.qtaskQueues[dst].Put(seed.Encode())

	for remaining := b.numQTasks - 1; remaining > 0; remaining-- {
		raw, ok := inbox.Get()
		if !ok {
			return nil
		}
		msg, err := protocol.DecodeMessage(raw)
		if err != nil {
			return err
		}
		if b.debug {
			zap.L().Debug("ctask", zap.Int("id", ctid), zap.String("msg", raw))
		}
		dst = (dst + 1) % b.numQTasks
		msg.Command = protocol.CmdQueue
		msg.Target = target
		msg.Path = append(msg.Path, self)
		b.qtaskQueues[dst].Put(msg.Encode())
		runtime.Gosched()
	}
	if b.debug {
		zap.L().Debug("ctask exit", zap.Int("id", ctid))
	}
	return nil
}
