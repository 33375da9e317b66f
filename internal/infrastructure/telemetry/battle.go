package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/defender/internal/application/system"
)

// BattleTracer turns battle events into spans: one "battle" span per
// encounter with a "battle.round" child per round. Individual events are
// recorded as span events on the round.
type BattleTracer struct {
	tracer trace.Tracer
	ctx    context.Context

	battle   trace.Span
	battleCx context.Context
	round    trace.Span
}

// NewBattleTracer creates a tracer whose spans are children of ctx
func NewBattleTracer(ctx context.Context, tracer trace.Tracer) *BattleTracer {
	return &BattleTracer{tracer: tracer, ctx: ctx}
}

// Listener returns the battle listener feeding the spans
func (bt *BattleTracer) Listener() system.Listener {
	return bt.observe
}

func (bt *BattleTracer) observe(ev system.Event) {
	if bt.battle == nil {
		bt.battleCx, bt.battle = bt.tracer.Start(bt.ctx, "battle")
	}
	if bt.round == nil {
		_, bt.round = bt.tracer.Start(bt.battleCx, "battle.round",
			trace.WithAttributes(attribute.Int("round", ev.Round)))
	}

	bt.round.AddEvent(ev.Kind.String(), trace.WithAttributes(eventAttributes(ev)...))
	if ev.Kind == system.EventRejected && ev.Err != nil {
		bt.round.RecordError(ev.Err)
	}

	switch ev.Kind {
	case system.EventRoundEnded:
		bt.endRound()
	case system.EventVictory:
		bt.finish("victory", ev.Round)
	case system.EventDefeat:
		bt.finish("defeat", ev.Round)
	}
}

func eventAttributes(ev system.Event) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("phase", ev.Phase.String())}
	if ev.Actor != nil {
		attrs = append(attrs, attribute.String("actor", ev.Actor.Name))
	}
	if ev.Target != nil {
		attrs = append(attrs, attribute.String("target", ev.Target.Name))
	}
	switch ev.Kind {
	case system.EventMoved:
		attrs = append(attrs, attribute.Int("from", ev.From), attribute.Int("to", ev.To))
	case system.EventAttacked:
		attrs = append(attrs,
			attribute.String("ability", ev.Ability.String()),
			attribute.Int("damage", ev.Damage))
	}
	if ev.Message != "" {
		attrs = append(attrs, attribute.String("message", ev.Message))
	}
	return attrs
}

func (bt *BattleTracer) endRound() {
	if bt.round != nil {
		bt.round.End()
		bt.round = nil
	}
}

func (bt *BattleTracer) finish(outcome string, rounds int) {
	bt.endRound()
	bt.battle.SetAttributes(attribute.String("outcome", outcome), attribute.Int("rounds", rounds))
	bt.battle.SetStatus(codes.Ok, outcome)
	bt.battle.End()
	bt.battle = nil
}

// End closes spans of a battle that was abandoned before it was decided
func (bt *BattleTracer) End() {
	if bt.battle == nil {
		return
	}
	bt.endRound()
	bt.battle.SetAttributes(attribute.String("outcome", "abandoned"))
	bt.battle.End()
	bt.battle = nil
}
