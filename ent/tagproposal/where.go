// Code generated by ent, DO NOT EDIT.

package tagproposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hnscribe/hnscribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContainsFold(FieldID, id))
}

// AgentRunID applies equality check predicate on the "agent_run_id" field. It's identical to AgentRunIDEQ.
func AgentRunID(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldAgentRunID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldReason, v))
}

// AffectedStoriesCount applies equality check predicate on the "affected_stories_count" field. It's identical to AffectedStoriesCountEQ.
func AffectedStoriesCount(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldAffectedStoriesCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldReviewedBy, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldExecutedAt, v))
}

// AgentRunIDEQ applies the EQ predicate on the "agent_run_id" field.
func AgentRunIDEQ(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldAgentRunID, v))
}

// AgentRunIDNEQ applies the NEQ predicate on the "agent_run_id" field.
func AgentRunIDNEQ(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldAgentRunID, v))
}

// AgentRunIDIn applies the In predicate on the "agent_run_id" field.
func AgentRunIDIn(vs ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldAgentRunID, vs...))
}

// AgentRunIDNotIn applies the NotIn predicate on the "agent_run_id" field.
func AgentRunIDNotIn(vs ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldAgentRunID, vs...))
}

// AgentRunIDGT applies the GT predicate on the "agent_run_id" field.
func AgentRunIDGT(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldAgentRunID, v))
}

// AgentRunIDGTE applies the GTE predicate on the "agent_run_id" field.
func AgentRunIDGTE(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldAgentRunID, v))
}

// AgentRunIDLT applies the LT predicate on the "agent_run_id" field.
func AgentRunIDLT(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldAgentRunID, v))
}

// AgentRunIDLTE applies the LTE predicate on the "agent_run_id" field.
func AgentRunIDLTE(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldAgentRunID, v))
}

// AgentRunIDContains applies the Contains predicate on the "agent_run_id" field.
func AgentRunIDContains(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContains(FieldAgentRunID, v))
}

// AgentRunIDHasPrefix applies the HasPrefix predicate on the "agent_run_id" field.
func AgentRunIDHasPrefix(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldHasPrefix(FieldAgentRunID, v))
}

// AgentRunIDHasSuffix applies the HasSuffix predicate on the "agent_run_id" field.
func AgentRunIDHasSuffix(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldHasSuffix(FieldAgentRunID, v))
}

// AgentRunIDEqualFold applies the EqualFold predicate on the "agent_run_id" field.
func AgentRunIDEqualFold(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEqualFold(FieldAgentRunID, v))
}

// AgentRunIDContainsFold applies the ContainsFold predicate on the "agent_run_id" field.
func AgentRunIDContainsFold(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContainsFold(FieldAgentRunID, v))
}

// ProposalTypeEQ applies the EQ predicate on the "proposal_type" field.
func ProposalTypeEQ(v ProposalType) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldProposalType, v))
}

// ProposalTypeNEQ applies the NEQ predicate on the "proposal_type" field.
func ProposalTypeNEQ(v ProposalType) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldProposalType, v))
}

// ProposalTypeIn applies the In predicate on the "proposal_type" field.
func ProposalTypeIn(vs ...ProposalType) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldProposalType, vs...))
}

// ProposalTypeNotIn applies the NotIn predicate on the "proposal_type" field.
func ProposalTypeNotIn(vs ...ProposalType) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldProposalType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldPriority, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContainsFold(FieldReason, v))
}

// AffectedStoriesCountEQ applies the EQ predicate on the "affected_stories_count" field.
func AffectedStoriesCountEQ(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldAffectedStoriesCount, v))
}

// AffectedStoriesCountNEQ applies the NEQ predicate on the "affected_stories_count" field.
func AffectedStoriesCountNEQ(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldAffectedStoriesCount, v))
}

// AffectedStoriesCountIn applies the In predicate on the "affected_stories_count" field.
func AffectedStoriesCountIn(vs ...int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldAffectedStoriesCount, vs...))
}

// AffectedStoriesCountNotIn applies the NotIn predicate on the "affected_stories_count" field.
func AffectedStoriesCountNotIn(vs ...int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldAffectedStoriesCount, vs...))
}

// AffectedStoriesCountGT applies the GT predicate on the "affected_stories_count" field.
func AffectedStoriesCountGT(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldAffectedStoriesCount, v))
}

// AffectedStoriesCountGTE applies the GTE predicate on the "affected_stories_count" field.
func AffectedStoriesCountGTE(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldAffectedStoriesCount, v))
}

// AffectedStoriesCountLT applies the LT predicate on the "affected_stories_count" field.
func AffectedStoriesCountLT(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldAffectedStoriesCount, v))
}

// AffectedStoriesCountLTE applies the LTE predicate on the "affected_stories_count" field.
func AffectedStoriesCountLTE(v int) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldAffectedStoriesCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldCreatedAt, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotNull(FieldReviewedAt))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.TagProposal {
	return predicate.TagProposal(sql.FieldLTE(FieldExecutedAt, v))
}

// ExecutedAtIsNil applies the IsNil predicate on the "executed_at" field.
func ExecutedAtIsNil() predicate.TagProposal {
	return predicate.TagProposal(sql.FieldIsNull(FieldExecutedAt))
}

// ExecutedAtNotNil applies the NotNil predicate on the "executed_at" field.
func ExecutedAtNotNil() predicate.TagProposal {
	return predicate.TagProposal(sql.FieldNotNull(FieldExecutedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.TagProposal {
	return predicate.TagProposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.AgentRun) predicate.TagProposal {
	return predicate.TagProposal(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TagProposal) predicate.TagProposal {
	return predicate.TagProposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TagProposal) predicate.TagProposal {
	return predicate.TagProposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TagProposal) predicate.TagProposal {
	return predicate.TagProposal(sql.NotPredicates(p))
}
